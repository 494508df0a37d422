package assign

import (
	"log/slog"

	"capstone-panel-system/internal/global/logger"
)

var log *slog.Logger

type ModuleAssign struct{}

func (a *ModuleAssign) GetName() string {
	return "Assign"
}

func (a *ModuleAssign) Init() {
	log = logger.New("Assign")
}
