// Package workflow centralizes the status state machines for quotes, work
// plans and deliverables. Every transition is resolved against a single
// (status, action) table per entity, so illegal transitions are rejected in
// one place instead of ad hoc per handler.
package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a workflow verb requested against a stateful entity.
type Action string

const (
	ActionEnviar   Action = "enviar"
	ActionAprobar  Action = "aprobar"
	ActionRechazar Action = "rechazar"
)

var (
	// ErrPrecondition means the entity's current status does not admit the
	// requested action. The entity is left untouched.
	ErrPrecondition = errors.New("status does not allow this action")
	// ErrReasonRequired means a rejection was requested without a reason.
	ErrReasonRequired = errors.New("rejection reason is required")
)

// Machine is a transition table keyed by current status, then action.
type Machine map[string]map[Action]string

// rejections lists which actions demand an accompanying reason.
var rejections = map[Action]bool{ActionRechazar: true}

// Next resolves the target status for (current, action). It fails with
// ErrPrecondition when the table has no entry and with ErrReasonRequired
// when a rejection carries a blank reason. It never mutates anything; the
// caller persists the returned status.
func (m Machine) Next(current string, action Action, reason string) (string, error) {
	byAction, ok := m[current]
	if !ok {
		return "", fmt.Errorf("%w: %q cannot %q", ErrPrecondition, current, action)
	}
	next, ok := byAction[action]
	if !ok {
		return "", fmt.Errorf("%w: %q cannot %q", ErrPrecondition, current, action)
	}
	if rejections[action] && strings.TrimSpace(reason) == "" {
		return "", ErrReasonRequired
	}
	return next, nil
}

// CanEdit reports whether free-form edits are allowed in the given status.
func (m Machine) CanEdit(current string, editable ...string) bool {
	for _, s := range editable {
		if current == s {
			return true
		}
	}
	return false
}

// QuoteMachine: borrador --enviar--> enviada --aprobar--> aprobada;
// enviada --rechazar--> rechazada.
var QuoteMachine = Machine{
	"borrador": {ActionEnviar: "enviada"},
	"enviada":  {ActionAprobar: "aprobada", ActionRechazar: "rechazada"},
}

// WorkPlanMachine: {borrador, rechazado} --enviar--> enviado;
// {enviado, en_revision} --aprobar--> aprobado;
// enviado --rechazar--> rechazado.
var WorkPlanMachine = Machine{
	"borrador":    {ActionEnviar: "enviado"},
	"rechazado":   {ActionEnviar: "enviado"},
	"enviado":     {ActionAprobar: "aprobado", ActionRechazar: "rechazado"},
	"en_revision": {ActionAprobar: "aprobado"},
}

// DeliverableMachine: enviado --aprobar--> aprobado;
// enviado --rechazar--> rechazado.
var DeliverableMachine = Machine{
	"enviado": {ActionAprobar: "aprobado", ActionRechazar: "rechazado"},
}
