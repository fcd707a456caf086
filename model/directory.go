package model

// DirectoryEntry is one row of the section index at the end of the header:
// a section's file number, section number, record count, and modification
// number.
type DirectoryEntry struct {
	MF  FileNumber
	MT  int
	NC  int // number of records in the section, SEND excluded
	MOD int // modification number of the section
}

// Directory is the ordered index of every section on the material.
type Directory []DirectoryEntry

// Find returns the entry for (mf, mt) and whether the directory lists it.
func (d Directory) Find(mf FileNumber, mt int) (DirectoryEntry, bool) {
	for _, e := range d {
		if e.MF == mf && e.MT == mt {
			return e, true
		}
	}
	return DirectoryEntry{}, false
}

// Files returns the distinct file numbers in directory order.
func (d Directory) Files() []FileNumber {
	var out []FileNumber
	seen := make(map[FileNumber]bool)
	for _, e := range d {
		if !seen[e.MF] {
			seen[e.MF] = true
			out = append(out, e.MF)
		}
	}
	return out
}
