package pose

import (
	"biped-anim/internal/ability"
	"biped-anim/internal/gait"
	"biped-anim/internal/tool"
)

// registration is one row of the builtin program table.
type registration struct {
	kind    tool.Kind
	program Program
	ids     []string // empty registers the kind's default
}

func builtinPrograms() []registration {
	return []registration{
		{tool.Sword, ProgramFunc(volley), []string{ability.DullahanKnifeRain, ability.DullahanFierceDarts}},
		{tool.Sword, raiseArms(true), []string{ability.AdletElderAirBlade}},
		{tool.Sword, raiseArms(false), []string{ability.AdletElderTrap}},

		{tool.Hammer, ProgramFunc(opticBlast), []string{ability.CyclopsOpticBlast}},
		{tool.Hammer, ProgramFunc(mortar), []string{ability.ForgemasterLavaMortar, ability.ForgemasterMines}},

		{tool.Sceptre, ProgramFunc(cast), nil},

		{tool.Staff, ProgramFunc(necroticSphere), []string{ability.MindflayerNecroticSphere}},
		{tool.Staff, ProgramFunc(cast), nil},

		{tool.Bow, drawMultishot, []string{ability.TerracottaBesiegerMultishot}},
		{tool.Bow, drawDefault, nil},

		{tool.Axe, ProgramFunc(axeSpin), nil},

		{tool.Natural, ProgramFunc(axeThrow), []string{ability.MinotaurAxeThrow}},
		{tool.Natural, ProgramFunc(frostBomb), []string{ability.WendigoFrostBomb}},
		{tool.Natural, ProgramFunc(snowball), []string{ability.YetiSnowball}},
		{tool.Natural, ProgramFunc(demolisherThrow), []string{ability.TerracottaDemolisherThrow}},
		{tool.Natural, ProgramFunc(volley), []string{ability.TerracottaDemolisherDrop}},
		{tool.Natural, lob(false), []string{ability.HarvesterExplodingPumpkin}},
		{tool.Natural, lob(true), []string{ability.StrigoiProjectiles}},
	}
}

// DefaultTable builds the builtin program table, validating every ability
// id against catalog.
func DefaultTable(catalog ability.Catalog) (*Table, error) {
	t := NewTable(catalog)
	for _, r := range builtinPrograms() {
		var err error
		if len(r.ids) == 0 {
			err = t.RegisterDefault(r.kind, r.program)
		} else {
			err = t.Register(r.kind, r.program, r.ids...)
		}
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NewDefaultAnimator is DefaultTable with the builtin ability catalog and
// the default gait tuning.
func NewDefaultAnimator() (*Animator, error) {
	t, err := DefaultTable(ability.Builtin())
	if err != nil {
		return nil, err
	}
	return NewAnimator(t, gait.DefaultParams()), nil
}
