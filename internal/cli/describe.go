package cli

import (
	"pbconvert-generator/internal/analyze"
	"pbconvert-generator/internal/plan"
)

// unitView is the printable form of a described type. Type infos are
// flattened to strings so the dump stays readable.
type unitView struct {
	Kind      string
	Type      string
	Source    string
	SerdeShim bool

	Fields []memberView

	Oneof         string
	Rename        string
	ImplFromTrait bool
	Variants      []memberView
}

// memberView is a struct field or an enum variant.
type memberView struct {
	Name     string
	Slot     string
	Type     string
	Strategy string
	With     string
}

func describePlan(p *plan.Plan) []unitView {
	views := make([]unitView, 0, len(p.Units))

	for _, u := range p.Units {
		v := unitView{
			Type:      u.Name(),
			Source:    u.Source().String(),
			SerdeShim: u.SerdeShim(),
		}

		if sd := u.Struct; sd != nil {
			v.Kind = "struct"

			for _, f := range sd.Fields {
				v.Fields = append(v.Fields, memberView{
					Name:     f.Name,
					Slot:     f.Slot,
					Type:     typeString(f.Conversion.Native),
					Strategy: f.Conversion.Strategy.String(),
					With:     withString(f.Conversion),
				})
			}
		}

		if ed := u.Enum; ed != nil {
			v.Kind = "enum"
			v.Oneof = ed.OneofField
			v.Rename = ed.Rename.String()
			v.ImplFromTrait = ed.ImplFromTrait

			for _, vd := range ed.Variants {
				v.Variants = append(v.Variants, memberView{
					Name:     vd.Name,
					Slot:     vd.Slot,
					Type:     typeString(vd.Payload),
					Strategy: vd.Conversion.Strategy.String(),
					With:     withString(vd.Conversion),
				})
			}
		}

		views = append(views, v)
	}

	return views
}

func typeString(t *analyze.TypeInfo) string {
	if t == nil {
		return ""
	}

	return analyze.TypeString(t)
}

func withString(c plan.Conversion) string {
	if c.Strategy != plan.StrategyCustom {
		return ""
	}

	return c.With.String()
}
