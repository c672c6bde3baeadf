package phase

// Curves shared by several programs, named after their shape.
var (
	// SnapIn eases the wind-up in quickly and holds the pullback until late.
	SnapIn = Curve{Buildup: Root4, Action: Linear, Recover: Pow4}

	// SnapRelease winds up linearly and snaps the release.
	SnapRelease = Curve{Buildup: Linear, Action: Root4, Recover: Linear}

	// SnapInLinearRecover eases in like SnapIn but pulls back linearly.
	SnapInLinearRecover = Curve{Buildup: Root4, Action: Linear, Recover: Linear}

	// SlamCapped is the capped mortar wind-up.
	SlamCapped = Curve{Buildup: Capped(Root4), Action: Capped(Root10), Recover: Linear}
)
