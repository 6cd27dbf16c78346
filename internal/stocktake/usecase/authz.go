package usecase

import (
	"github.com/Blackprojecttech/technoline-stocktake/internal/auth"
	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake"
)

// roleAuthorizer is the default report-deletion policy: admins may delete
// any report, everyone else only their own.
type roleAuthorizer struct{}

func NewRoleAuthorizer() stocktake.ReportAuthorizer {
	return roleAuthorizer{}
}

func (roleAuthorizer) CanDelete(actor auth.Actor, report *model.ReconciliationReport) bool {
	if actor.Role == auth.RoleAdmin {
		return true
	}
	return report.CreatedBy != "" && report.CreatedBy == actor.Username
}
