// Package export serializes parsed evaluations for other tools. Both
// encodings share one envelope: a schema-versioned document carrying the
// science payload, never the ENDF card text.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hearic/pyne/core"
	"github.com/hearic/pyne/model"
)

// SchemaVersion identifies the envelope layout. Incremented when the
// document format changes.
const SchemaVersion uint16 = 1

// ErrSchemaVersion reports an envelope written by an incompatible version.
var ErrSchemaVersion = errors.New("unsupported schema version")

type document struct {
	Schema    uint16   `json:"schema"`
	Material  int      `json:"material"`
	TapeID    string   `json:"tapeId,omitempty"`
	Metadata  metadata `json:"metadata"`
	Directory []entry  `json:"directory,omitempty"`
	Files     []file   `json:"files,omitempty"`
}

type metadata struct {
	ZA   int     `json:"za"`
	AWR  float64 `json:"awr"`
	LRP  int     `json:"lrp"`
	LFI  int     `json:"lfi"`
	NLIB int     `json:"nlib"`
	NMOD int     `json:"nmod"`

	ELIS float64 `json:"elis"`
	STA  int     `json:"sta"`
	LIS  int     `json:"lis"`
	LISO int     `json:"liso"`
	NFOR int     `json:"nfor"`

	AWI  float64 `json:"awi"`
	EMAX float64 `json:"emax"`
	LREL int     `json:"lrel"`
	NSUB int     `json:"nsub"`
	NVER int     `json:"nver"`

	TEMP float64 `json:"temp"`
	LDRV int     `json:"ldrv"`
	NWD  int     `json:"nwd"`
	NXC  int     `json:"nxc"`

	ZSYMAM string `json:"zsymam"`
	ALAB   string `json:"alab"`
	EDATE  string `json:"edate"`
	AUTH   string `json:"auth"`
	REF    string `json:"ref"`
	DDATE  string `json:"ddate"`
	RDATE  string `json:"rdate"`
	ENDATE string `json:"endate"`
	HSUB   string `json:"hsub"`

	Description []string `json:"description,omitempty"`
}

type entry struct {
	MF  int `json:"mf"`
	MT  int `json:"mt"`
	NC  int `json:"nc"`
	MOD int `json:"mod"`
}

type file struct {
	MF        int        `json:"mf"`
	Reactions []reaction `json:"reactions,omitempty"`
}

type reaction struct {
	MT   int          `json:"mt"`
	ZA   int          `json:"za"`
	AWR  float64      `json:"awr"`
	LNU  int          `json:"lnu,omitempty"`
	LDG  int          `json:"ldg,omitempty"`
	LO   int          `json:"lo,omitempty"`
	NG   int          `json:"ng,omitempty"`
	Data *dataPayload `json:"data,omitempty"`
}

type dataPayload struct {
	Kind           string       `json:"kind"`
	Coefficients   []float64    `json:"coefficients,omitempty"`
	Table          *table       `json:"table,omitempty"`
	DecayConstants []float64    `json:"decayConstants,omitempty"`
	Nu             *dataPayload `json:"nu,omitempty"`
}

type table struct {
	Breakpoints    []int     `json:"breakpoints"`
	Interpolations []int     `json:"interpolations"`
	X              []float64 `json:"x"`
	Y              []float64 `json:"y"`
}

// JSON writes ev as a JSON document. pretty selects indented output.
func JSON(w io.Writer, ev *model.Evaluation, pretty bool) error {
	doc := build(ev)

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Msgpack writes ev as a MessagePack document.
func Msgpack(w io.Writer, ev *model.Evaluation) error {
	return msgpack.NewEncoder(w).Encode(build(ev))
}

// ReadMsgpack decodes a MessagePack document back into an evaluation,
// checking the envelope version first.
func ReadMsgpack(r io.Reader) (*model.Evaluation, error) {
	var doc document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	if doc.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w %d (want %d)", ErrSchemaVersion, doc.Schema, SchemaVersion)
	}
	return restore(doc)
}

func build(ev *model.Evaluation) document {
	doc := document{
		Schema:   SchemaVersion,
		Material: ev.Material,
		TapeID:   ev.TapeID,
		Metadata: metadata(ev.Metadata),
	}
	for _, e := range ev.Directory {
		doc.Directory = append(doc.Directory, entry{MF: int(e.MF), MT: e.MT, NC: e.NC, MOD: e.MOD})
	}
	for _, f := range ev.Files {
		df := file{MF: int(f.Number)}
		for _, rx := range f.Reactions {
			df.Reactions = append(df.Reactions, reaction{
				MT: rx.MT, ZA: rx.ZA, AWR: rx.AWR,
				LNU: rx.LNU, LDG: rx.LDG, LO: rx.LO, NG: rx.NG,
				Data: buildData(rx.Data),
			})
		}
		doc.Files = append(doc.Files, df)
	}
	return doc
}

func buildData(d model.Data) *dataPayload {
	switch d := d.(type) {
	case *model.Polynomial:
		return &dataPayload{Kind: "polynomial", Coefficients: d.Coefficients}
	case *model.Tabulated:
		return &dataPayload{Kind: "tabulated", Table: &table{
			Breakpoints:    d.Table.NBT,
			Interpolations: d.Table.INT,
			X:              d.Table.X,
			Y:              d.Table.Y,
		}}
	case *model.DelayedGroups:
		return &dataPayload{
			Kind:           "delayedGroups",
			DecayConstants: d.DecayConstants,
			Nu:             buildData(d.Nu),
		}
	default:
		return nil
	}
}

func restore(doc document) (*model.Evaluation, error) {
	ev := &model.Evaluation{
		Material: doc.Material,
		TapeID:   doc.TapeID,
		Metadata: model.Metadata(doc.Metadata),
	}
	for _, e := range doc.Directory {
		ev.Directory = append(ev.Directory, model.DirectoryEntry{
			MF: model.FileNumber(e.MF), MT: e.MT, NC: e.NC, MOD: e.MOD,
		})
	}
	for _, df := range doc.Files {
		for _, drx := range df.Reactions {
			data, err := restoreData(drx.Data)
			if err != nil {
				return nil, fmt.Errorf("reaction MT=%d: %w", drx.MT, err)
			}
			ev.AddReaction(model.FileNumber(df.MF), &model.Reaction{
				MT: drx.MT, ZA: drx.ZA, AWR: drx.AWR,
				LNU: drx.LNU, LDG: drx.LDG, LO: drx.LO, NG: drx.NG,
				Data: data,
			})
		}
	}
	return ev, nil
}

func restoreData(p *dataPayload) (model.Data, error) {
	if p == nil {
		return nil, nil
	}
	switch p.Kind {
	case "polynomial":
		return &model.Polynomial{Coefficients: p.Coefficients}, nil
	case "tabulated":
		if p.Table == nil {
			return nil, fmt.Errorf("tabulated payload without a table")
		}
		return &model.Tabulated{Table: core.Tab1Record{
			ControlRecord: core.ControlRecord{N1: len(p.Table.Breakpoints), N2: len(p.Table.X)},
			NBT:           p.Table.Breakpoints,
			INT:           p.Table.Interpolations,
			X:             p.Table.X,
			Y:             p.Table.Y,
		}}, nil
	case "delayedGroups":
		nu, err := restoreData(p.Nu)
		if err != nil {
			return nil, err
		}
		return &model.DelayedGroups{DecayConstants: p.DecayConstants, Nu: nu}, nil
	default:
		return nil, fmt.Errorf("unknown data kind %q", p.Kind)
	}
}
