package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"biped-anim/internal/mathutil"
	"biped-anim/internal/phase"
	sk "biped-anim/internal/skeleton"
)

var (
	dumpFrame frameFlags
	dumpStage string
	dumpTime  float64
	dumpWorld bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print one pose frame as JSON",
	RunE:  runDump,
}

func init() {
	dumpFrame.register(dumpCmd)
	dumpCmd.Flags().StringVar(&dumpStage, "stage", "buildup", "Stage section: none, buildup, action, recover")
	dumpCmd.Flags().Float64Var(&dumpTime, "time", 0.5, "Phase-local time within the section")
	dumpCmd.Flags().BoolVar(&dumpWorld, "world", false, "Include world-space joint positions")
}

// boneDump is the JSON form of one bone.
type boneDump struct {
	Name        string         `json:"name"`
	Position    mathutil.Vec3  `json:"position"`
	Orientation mathutil.Quat  `json:"orientation"`
	Scale       mathutil.Vec3  `json:"scale"`
	World       *mathutil.Vec3 `json:"world,omitempty"`
}

type poseDump struct {
	Tool    string     `json:"tool"`
	Ability string     `json:"ability,omitempty"`
	Species string     `json:"species"`
	Stage   string     `json:"stage"`
	Time    float64    `json:"time"`
	Rate    float64    `json:"rate"`
	Bones   []boneDump `json:"bones"`
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx, species, attr, err := dumpFrame.resolve()
	if err != nil {
		return err
	}
	if ctx.Stage, err = phase.ParseSection(dumpStage); err != nil {
		return err
	}

	next, rate := animator.Update(sk.Rest(attr), ctx, dumpTime, attr)

	var joints []mathutil.Vec3
	if dumpWorld {
		joints = sk.Joints(next)
	}

	out := poseDump{
		Tool:    ctx.ActiveTool.String(),
		Ability: ctx.AbilityID,
		Species: species,
		Stage:   ctx.Stage.String(),
		Time:    dumpTime,
		Rate:    rate,
	}
	for _, id := range sk.AllBones() {
		b := next.Get(id)
		d := boneDump{Name: id.String(), Position: b.Position, Orientation: b.Orientation, Scale: b.Scale}
		if joints != nil {
			d.World = &joints[id]
		}
		out.Bones = append(out.Bones, d)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
