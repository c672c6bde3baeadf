package archetype

import sk "biped-anim/internal/skeleton"

// Species names of the builtin table.
const (
	Cyclops              = "cyclops"
	Dullahan             = "dullahan"
	AdletElder           = "adlet_elder"
	Forgemaster          = "forgemaster"
	Mindflayer           = "mindflayer"
	TerracottaBesieger   = "terracotta_besieger"
	Minotaur             = "minotaur"
	Wendigo              = "wendigo"
	Yeti                 = "yeti"
	TerracottaDemolisher = "terracotta_demolisher"
	Harvester            = "harvester"
	Strigoi              = "strigoi"
)

var builtin = map[string]sk.Attr{
	Cyclops: {
		Head:       [2]float64{10, 19},
		Jaw:        [2]float64{3, -5},
		UpperTorso: [2]float64{-1, 24},
		LowerTorso: [2]float64{1, -10},
		Tail:       [2]float64{-11, 0},
		Shoulder:   [3]float64{8, 0.5, 5},
		Hand:       [3]float64{9, 1, -2},
		Leg:        [3]float64{5.5, 0, 1},
		Foot:       [3]float64{6, 0, 17},
		Grip:       [2]float64{13, 0.5},
		Height:     3.0,
		Tempo:      0.8,
		Scaler:     2.2,
	},
	Dullahan: {
		Head:       [2]float64{-10, 14},
		Jaw:        [2]float64{0, 0},
		UpperTorso: [2]float64{-1, 19},
		LowerTorso: [2]float64{1, -6},
		Tail:       [2]float64{-11, 0},
		Shoulder:   [3]float64{7, 0, 3},
		Hand:       [3]float64{8, 0, -3},
		Leg:        [3]float64{4.5, 0, -2},
		Foot:       [3]float64{5, 1, 14},
		Grip:       [2]float64{10, 0.5},
		Height:     2.0,
		Tempo:      1.0,
		Scaler:     1.8,
	},
	AdletElder: {
		Head:       [2]float64{8, 13},
		Jaw:        [2]float64{6, -3.5},
		UpperTorso: [2]float64{0, 14},
		LowerTorso: [2]float64{0, -4},
		Tail:       [2]float64{-7, -2},
		Shoulder:   [3]float64{6, 0, 2},
		Hand:       [3]float64{6.5, 0, -1.5},
		Leg:        [3]float64{3.5, 0, -1},
		Foot:       [3]float64{4, 0.5, 11},
		Grip:       [2]float64{9, 0.5},
		Height:     1.6,
		Tempo:      1.1,
		Scaler:     1.2,
	},
	Forgemaster: {
		Head:       [2]float64{9, 14.5},
		Jaw:        [2]float64{4, -4},
		UpperTorso: [2]float64{-0.5, 20},
		LowerTorso: [2]float64{1, -8},
		Tail:       [2]float64{-10, 0},
		Shoulder:   [3]float64{8.5, 0.5, 4},
		Hand:       [3]float64{9.5, 1, -2},
		Leg:        [3]float64{5, 0, -1},
		Foot:       [3]float64{6.5, 1, 14},
		Grip:       [2]float64{15, 1},
		Height:     2.4,
		Tempo:      0.9,
		Scaler:     2.0,
	},
	Mindflayer: {
		Head:       [2]float64{12, 15},
		Jaw:        [2]float64{0, 0},
		UpperTorso: [2]float64{-1, 21},
		LowerTorso: [2]float64{1, -7.5},
		Tail:       [2]float64{-12, 0},
		Shoulder:   [3]float64{6, 1, 3},
		Hand:       [3]float64{7, 1.5, -1},
		Leg:        [3]float64{4, 0, -3},
		Foot:       [3]float64{4, 1, 15},
		Grip:       [2]float64{12, 0.5},
		Height:     2.6,
		Tempo:      1.0,
		Scaler:     1.9,
	},
	TerracottaBesieger: {
		Head:       [2]float64{8, 12},
		Jaw:        [2]float64{3.5, -3},
		UpperTorso: [2]float64{0, 20},
		LowerTorso: [2]float64{0, -5},
		Tail:       [2]float64{-9, 0},
		Shoulder:   [3]float64{9, -1, 3},
		Hand:       [3]float64{10, 1, -3},
		Leg:        [3]float64{6, 0, -2},
		Foot:       [3]float64{7, 0, 15},
		Grip:       [2]float64{13, 1},
		Height:     2.2,
		Tempo:      0.8,
		Scaler:     2.1,
	},
	Minotaur: {
		Head:       [2]float64{11, 15},
		Jaw:        [2]float64{6, -2},
		UpperTorso: [2]float64{-2, 22},
		LowerTorso: [2]float64{2, -9},
		Tail:       [2]float64{-12, -3},
		Shoulder:   [3]float64{9, 0, 4},
		Hand:       [3]float64{10, 1, -3},
		Leg:        [3]float64{5, 0, -2},
		Foot:       [3]float64{6, 2, 17},
		Grip:       [2]float64{14, 1},
		Height:     2.6,
		Tempo:      0.95,
		Scaler:     2.2,
	},
	Wendigo: {
		Head:       [2]float64{14, 12},
		Jaw:        [2]float64{6, -6},
		UpperTorso: [2]float64{-2, 20},
		LowerTorso: [2]float64{1, -8},
		Tail:       [2]float64{-10, -2},
		Shoulder:   [3]float64{7, 2, 2},
		Hand:       [3]float64{8, 1, -4},
		Leg:        [3]float64{4, 0, -2},
		Foot:       [3]float64{5, 0, 16},
		Grip:       [2]float64{12, 0.5},
		Height:     2.4,
		Tempo:      1.2,
		Scaler:     1.8,
	},
	Yeti: {
		Head:       [2]float64{8, 14},
		Jaw:        [2]float64{4, -4},
		UpperTorso: [2]float64{-2, 21},
		LowerTorso: [2]float64{1, -8},
		Tail:       [2]float64{-10, 0},
		Shoulder:   [3]float64{9, 0.5, 4},
		Hand:       [3]float64{10, 1, -3},
		Leg:        [3]float64{6, 0, -2},
		Foot:       [3]float64{7, 1, 16},
		Grip:       [2]float64{13, 1},
		Height:     2.5,
		Tempo:      0.9,
		Scaler:     2.2,
	},
	TerracottaDemolisher: {
		Head:       [2]float64{7, 12},
		Jaw:        [2]float64{3, -3},
		UpperTorso: [2]float64{0, 19},
		LowerTorso: [2]float64{0, -6},
		Tail:       [2]float64{-9, 0},
		Shoulder:   [3]float64{8.5, 0, 3},
		Hand:       [3]float64{9.5, 1, -3},
		Leg:        [3]float64{6, 0, -2},
		Foot:       [3]float64{7, 0, 14},
		Grip:       [2]float64{12, 1},
		Height:     2.2,
		Tempo:      0.75,
		Scaler:     2.0,
	},
	Harvester: {
		Head:       [2]float64{11.5, 16},
		Jaw:        [2]float64{6, -5},
		UpperTorso: [2]float64{-1, 20},
		LowerTorso: [2]float64{1, -9.5},
		Tail:       [2]float64{-11, 0},
		Shoulder:   [3]float64{6.5, 1, 3.5},
		Hand:       [3]float64{8, 1.5, -1},
		Leg:        [3]float64{5, 0, 0},
		Foot:       [3]float64{5.5, 0.5, 17},
		Grip:       [2]float64{13, 1},
		Height:     2.5,
		Tempo:      1.1,
		Scaler:     1.7,
	},
	Strigoi: {
		Head:       [2]float64{11.5, 18},
		Jaw:        [2]float64{5, -6},
		UpperTorso: [2]float64{-1, 22},
		LowerTorso: [2]float64{1, -10},
		Tail:       [2]float64{-11, 0},
		Shoulder:   [3]float64{6, 1, 3},
		Hand:       [3]float64{7.5, 1, -2},
		Leg:        [3]float64{4, 0, 0},
		Foot:       [3]float64{5, 0, 18},
		Grip:       [2]float64{11, 0.5},
		Height:     2.8,
		Tempo:      1.2,
		Scaler:     1.8,
	},
}
