package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		newSettings,
		fx.Annotate(events, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(verifyCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
