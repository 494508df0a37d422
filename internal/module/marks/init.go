package marks

import (
	"log/slog"

	"capstone-panel-system/internal/global/logger"
)

var log *slog.Logger

type ModuleMarks struct{}

func (m *ModuleMarks) GetName() string {
	return "Marks"
}

func (m *ModuleMarks) Init() {
	log = logger.New("Marks")
}
