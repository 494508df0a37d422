package module

import (
	"capstone-panel-system/internal/module/assign"
	"capstone-panel-system/internal/module/faculty"
	"capstone-panel-system/internal/module/marks"
	"capstone-panel-system/internal/module/panel"
	"capstone-panel-system/internal/module/ping"
	"capstone-panel-system/internal/module/report"
	"capstone-panel-system/internal/module/schema"
	"capstone-panel-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&faculty.ModuleFaculty{},
		&schema.ModuleSchema{},
		&panel.ModulePanel{},
		&assign.ModuleAssign{},
		&marks.ModuleMarks{},
		&report.ModuleReport{},
	})
}
