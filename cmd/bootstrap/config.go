package bootstrap

import (
	"coworking-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config", fx.Provide(config.LoadConfig))
