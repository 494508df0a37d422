package report

import (
	"log/slog"

	"capstone-panel-system/internal/global/logger"
)

var log *slog.Logger

type ModuleReport struct{}

func (r *ModuleReport) GetName() string {
	return "Report"
}

func (r *ModuleReport) Init() {
	log = logger.New("Report")
}
