package panel

import (
	"log/slog"

	"capstone-panel-system/internal/global/logger"
)

var log *slog.Logger

type ModulePanel struct{}

func (p *ModulePanel) GetName() string {
	return "Panel"
}

func (p *ModulePanel) Init() {
	log = logger.New("Panel")
}
