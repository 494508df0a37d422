package faculty

import (
	"log/slog"

	"capstone-panel-system/internal/global/logger"
)

var log *slog.Logger

type ModuleFaculty struct{}

func (f *ModuleFaculty) GetName() string {
	return "Faculty"
}

func (f *ModuleFaculty) Init() {
	log = logger.New("Faculty")
}
