package schema

import (
	"log/slog"

	"capstone-panel-system/internal/global/logger"
)

var log *slog.Logger

type ModuleSchema struct{}

func (s *ModuleSchema) GetName() string {
	return "Schema"
}

func (s *ModuleSchema) Init() {
	log = logger.New("Schema")
}
