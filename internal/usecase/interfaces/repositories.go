package interfaces

import (
	"context"
	"encoding/json"

	"peritaje_crm/internal/domain/entities"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mock_interfaces

// ICaseRepository abstracts DynamoDB persistence for Case.
type ICaseRepository interface {
	Create(ctx context.Context, c entities.Case) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	List(ctx context.Context) ([]entities.Case, error)
	UpdateDetails(ctx context.Context, c entities.Case) (entities.Case, error)
	SetAssignment(ctx context.Context, id string, role entities.AssignmentRole, userID string) (entities.Case, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Case, error)
}

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateStatus persists the outcome of a workflow transition; the status
// precondition itself is checked by the use case before calling it.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, reason string) (entities.Quote, error)
}

// IWorkPlanRepository abstracts DynamoDB persistence for WorkPlan.
type IWorkPlanRepository interface {
	Create(ctx context.Context, wp entities.WorkPlan) (entities.WorkPlan, error)
	GetByID(ctx context.Context, id string) (entities.WorkPlan, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.WorkPlan, error)
	UpdateContent(ctx context.Context, wp entities.WorkPlan) (entities.WorkPlan, error)
	UpdateStatus(ctx context.Context, id string, status entities.WorkPlanStatus, comments string) (entities.WorkPlan, error)
}

// IDeliverableRepository abstracts DynamoDB persistence for Deliverable.
type IDeliverableRepository interface {
	Create(ctx context.Context, d entities.Deliverable) (entities.Deliverable, error)
	GetByID(ctx context.Context, id string) (entities.Deliverable, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Deliverable, error)
	UpdateStatus(ctx context.Context, id string, status entities.DeliverableStatus, reason string) (entities.Deliverable, error)
}

// IHearingRepository abstracts DynamoDB persistence for Hearing.
type IHearingRepository interface {
	Create(ctx context.Context, h entities.Hearing) (entities.Hearing, error)
	GetByID(ctx context.Context, id string) (entities.Hearing, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Hearing, error)
	UpdateResult(ctx context.Context, h entities.Hearing) (entities.Hearing, error)
}

// IPaymentRepository abstracts DynamoDB persistence for Payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, providerPaymentID string, providerPayload json.RawMessage) (entities.Payment, error)
}

// ICommissionRepository abstracts DynamoDB persistence for Commission.
type ICommissionRepository interface {
	Create(ctx context.Context, c entities.Commission) (entities.Commission, error)
	GetByID(ctx context.Context, id string) (entities.Commission, error)
	ListByExpertID(ctx context.Context, expertID string) ([]entities.Commission, error)
	MarkPaid(ctx context.Context, id string) (entities.Commission, error)
}

// IEvaluationRepository abstracts DynamoDB persistence for Evaluation.
type IEvaluationRepository interface {
	Create(ctx context.Context, e entities.Evaluation) (entities.Evaluation, error)
	GetByCaseID(ctx context.Context, caseID string) (entities.Evaluation, error)
	List(ctx context.Context) ([]entities.Evaluation, error)
}

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// MarkAllRead runs as store-level transactions scoped to one user and
// reports how many notifications it flipped.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
}

// IUserRepository abstracts DynamoDB persistence for CRM users.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	SetAvailability(ctx context.Context, id string, av entities.Availability) (entities.User, error)
	SetValidated(ctx context.Context, id string, validated bool) (entities.User, error)
	SetActive(ctx context.Context, id string, active bool) (entities.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// IAdminConfigRepository abstracts the singleton admin config document.
//
// Init performs a conditional create on the fixed config id; when the
// document already exists it returns a zero-value config and no error,
// mirroring the not-found convention used everywhere else.
type IAdminConfigRepository interface {
	Get(ctx context.Context) (entities.AdminConfig, error)
	Init(ctx context.Context, cfg entities.AdminConfig) (entities.AdminConfig, error)
	UpdatePasswords(ctx context.Context, masterHash, secondaryHash string) (entities.AdminConfig, error)
}

// ISettingRepository abstracts the key/value settings table.
type ISettingRepository interface {
	Get(ctx context.Context, key string) (entities.Setting, error)
	Put(ctx context.Context, s entities.Setting) (entities.Setting, error)
	List(ctx context.Context) ([]entities.Setting, error)
}
