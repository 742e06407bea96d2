package dataset

import (
	"context"

	"github.com/traceright/dataset-service/internal/dataset/usecase/command"
	"github.com/traceright/dataset-service/internal/user/usecase/query"
)

// userAdminGate adapts the user module's admin check to the gate the bulk
// commands consume.
type userAdminGate struct {
	handler *query.CheckAdminHandler
}

// NewUserAdminGate wraps the user module's admin check query.
func NewUserAdminGate(handler *query.CheckAdminHandler) command.AdminGate {
	return &userAdminGate{handler: handler}
}

func (g *userAdminGate) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	return g.handler.Handle(query.CheckAdminQuery{UserID: userID})
}
