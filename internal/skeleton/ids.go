package skeleton

import "fmt"

// BoneID indexes a bone of the large-biped rig. The set is fixed.
type BoneID int

const (
	Head BoneID = iota
	Jaw
	UpperTorso
	LowerTorso
	Tail
	Main
	Second
	ShoulderL
	ShoulderR
	HandL
	HandR
	LegL
	LegR
	FootL
	FootR
	Torso
	Control
	ControlL
	ControlR
	WeaponL
	WeaponR
	ArmControlL
	ArmControlR

	BoneCount int = iota
)

var boneNames = [BoneCount]string{
	Head:        "head",
	Jaw:         "jaw",
	UpperTorso:  "upper_torso",
	LowerTorso:  "lower_torso",
	Tail:        "tail",
	Main:        "main",
	Second:      "second",
	ShoulderL:   "shoulder_l",
	ShoulderR:   "shoulder_r",
	HandL:       "hand_l",
	HandR:       "hand_r",
	LegL:        "leg_l",
	LegR:        "leg_r",
	FootL:       "foot_l",
	FootR:       "foot_r",
	Torso:       "torso",
	Control:     "control",
	ControlL:    "control_l",
	ControlR:    "control_r",
	WeaponL:     "weapon_l",
	WeaponR:     "weapon_r",
	ArmControlL: "arm_control_l",
	ArmControlR: "arm_control_r",
}

// parents describes the composition hierarchy; -1 marks the root.
// Parents always precede children so a single forward pass composes the rig.
var parents = [BoneCount]BoneID{
	Torso:       -1,
	UpperTorso:  Torso,
	LowerTorso:  UpperTorso,
	Head:        UpperTorso,
	Jaw:         Head,
	Tail:        LowerTorso,
	LegL:        LowerTorso,
	LegR:        LowerTorso,
	FootL:       Torso,
	FootR:       Torso,
	ArmControlL: UpperTorso,
	ArmControlR: UpperTorso,
	ShoulderL:   ArmControlL,
	ShoulderR:   ArmControlR,
	Control:     UpperTorso,
	ControlL:    Control,
	ControlR:    Control,
	HandL:       ControlL,
	HandR:       ControlR,
	Main:        Control,
	Second:      Control,
	WeaponL:     ControlL,
	WeaponR:     ControlR,
}

// order is a parent-first traversal of the hierarchy.
var order = [BoneCount]BoneID{
	Torso, UpperTorso, LowerTorso, Head, Jaw, Tail, LegL, LegR, FootL, FootR,
	ArmControlL, ArmControlR, ShoulderL, ShoulderR, Control, ControlL, ControlR,
	HandL, HandR, Main, Second, WeaponL, WeaponR,
}

func (id BoneID) String() string {
	if id < 0 || int(id) >= BoneCount {
		return fmt.Sprintf("BoneID(%d)", int(id))
	}
	return boneNames[id]
}

// Parent returns the parent bone and false for the root.
func (id BoneID) Parent() (BoneID, bool) {
	p := parents[id]
	return p, p >= 0
}

// ParseBoneID resolves a snake_case bone name.
func ParseBoneID(name string) (BoneID, error) {
	for i, n := range boneNames {
		if n == name {
			return BoneID(i), nil
		}
	}
	return 0, fmt.Errorf("skeleton: unknown bone %q", name)
}

// AllBones lists every bone in index order.
func AllBones() []BoneID {
	ids := make([]BoneID, BoneCount)
	for i := range ids {
		ids[i] = BoneID(i)
	}
	return ids
}
