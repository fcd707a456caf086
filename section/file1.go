package section

import (
	"github.com/hearic/pyne/core"
	"github.com/hearic/pyne/model"
)

// readTotalNu decodes MT=452, the total number of neutrons per fission,
// given either as polynomial coefficients (LNU=1) or as a tabulated
// function of incident energy (LNU=2). Other LNU values keep their flags
// and leave the body to the dispatcher's skip.
func readTotalNu(r *core.RecordReader) (*model.Reaction, error) {
	head, err := r.ReadHead()
	if err != nil {
		return nil, err
	}
	rx := &model.Reaction{MT: 452, ZA: head.ZA, AWR: head.AWR, LNU: head.L2}
	switch rx.LNU {
	case 1:
		list, err := r.ReadList()
		if err != nil {
			return nil, err
		}
		rx.Data = &model.Polynomial{Coefficients: list.Values}
	case 2:
		tab, err := r.ReadTab1()
		if err != nil {
			return nil, err
		}
		rx.Data = &model.Tabulated{Table: tab}
	}
	return rx, nil
}

// readDelayedNu decodes MT=455, delayed neutrons per fission. Only
// energy-independent precursor constants (LDG=0) are interpreted: a LIST of
// decay constants followed by the delayed nubar, tabulated for LNU=2 or as
// polynomial coefficients for LNU=1.
func readDelayedNu(r *core.RecordReader) (*model.Reaction, error) {
	head, err := r.ReadHead()
	if err != nil {
		return nil, err
	}
	rx := &model.Reaction{MT: 455, ZA: head.ZA, AWR: head.AWR, LDG: head.L1, LNU: head.L2}
	if rx.LDG != 0 || (rx.LNU != 1 && rx.LNU != 2) {
		return rx, nil
	}

	list, err := r.ReadList()
	if err != nil {
		return nil, err
	}
	groups := &model.DelayedGroups{DecayConstants: list.Values}

	if rx.LNU == 1 {
		coeffs, err := r.ReadList()
		if err != nil {
			return nil, err
		}
		groups.Nu = &model.Polynomial{Coefficients: coeffs.Values}
	} else {
		tab, err := r.ReadTab1()
		if err != nil {
			return nil, err
		}
		groups.Nu = &model.Tabulated{Table: tab}
	}
	rx.Data = groups
	return rx, nil
}

// readPromptNu decodes MT=456, prompt neutrons per fission: tabulated for
// LNU=2, or a flat LIST for the spontaneous-fission case LNU=1.
func readPromptNu(r *core.RecordReader) (*model.Reaction, error) {
	head, err := r.ReadHead()
	if err != nil {
		return nil, err
	}
	rx := &model.Reaction{MT: 456, ZA: head.ZA, AWR: head.AWR, LNU: head.L2}
	switch rx.LNU {
	case 1:
		list, err := r.ReadList()
		if err != nil {
			return nil, err
		}
		rx.Data = &model.Polynomial{Coefficients: list.Values}
	case 2:
		tab, err := r.ReadTab1()
		if err != nil {
			return nil, err
		}
		rx.Data = &model.Tabulated{Table: tab}
	}
	return rx, nil
}

// readFissionEnergy records MT=458 down to its head fields. The
// energy-release components are not interpreted; the dispatcher skips them
// by record count.
func readFissionEnergy(r *core.RecordReader) (*model.Reaction, error) {
	head, err := r.ReadHead()
	if err != nil {
		return nil, err
	}
	return &model.Reaction{MT: 458, ZA: head.ZA, AWR: head.AWR}, nil
}

// readDelayedPhoton records MT=460 down to its head fields, keeping the
// representation flag LO and the discrete photon count NG.
func readDelayedPhoton(r *core.RecordReader) (*model.Reaction, error) {
	head, err := r.ReadHead()
	if err != nil {
		return nil, err
	}
	return &model.Reaction{MT: 460, ZA: head.ZA, AWR: head.AWR, LO: head.L1, NG: head.N1}, nil
}
