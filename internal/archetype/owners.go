package archetype

import "biped-anim/internal/ability"

var owners = map[string]string{
	ability.DullahanKnifeRain:           Dullahan,
	ability.DullahanFierceDarts:         Dullahan,
	ability.AdletElderAirBlade:          AdletElder,
	ability.AdletElderTrap:              AdletElder,
	ability.CyclopsOpticBlast:           Cyclops,
	ability.ForgemasterLavaMortar:       Forgemaster,
	ability.ForgemasterMines:            Forgemaster,
	ability.MindflayerNecroticSphere:    Mindflayer,
	ability.TerracottaBesiegerMultishot: TerracottaBesieger,
	ability.MinotaurAxeThrow:            Minotaur,
	ability.WendigoFrostBomb:            Wendigo,
	ability.YetiSnowball:                Yeti,
	ability.TerracottaDemolisherThrow:   TerracottaDemolisher,
	ability.TerracottaDemolisherDrop:    TerracottaDemolisher,
	ability.HarvesterExplodingPumpkin:   Harvester,
	ability.StrigoiProjectiles:          Strigoi,
}

// Owner returns the builtin species that uses an ability.
func Owner(abilityID string) (string, bool) {
	s, ok := owners[abilityID]
	return s, ok
}
