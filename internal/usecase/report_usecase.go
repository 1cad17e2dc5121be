package usecase

import (
	"context"
	"time"

	"peritaje_crm/internal/domain/entities"
	"peritaje_crm/internal/usecase/interfaces"
)

// CasesReport aggregates case counts by status within a date range.
type CasesReport struct {
	From     *time.Time     `json:"from,omitempty"`
	To       *time.Time     `json:"to,omitempty"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// RevenueReport aggregates paid and pending payment amounts.
type RevenueReport struct {
	From          *time.Time `json:"from,omitempty"`
	To            *time.Time `json:"to,omitempty"`
	TotalPaid     float64    `json:"total_paid"`
	TotalPending  float64    `json:"total_pending"`
	PaymentsCount int        `json:"payments_count"`
}

// ExpertPerformance is one row of the experts-performance report.
type ExpertPerformance struct {
	ExpertID     string  `json:"expert_id"`
	Evaluations  int     `json:"evaluations"`
	AverageScore float64 `json:"average_score"`
}

// IReportUseCase serves the three read-only aggregation endpoints. All of
// them scan and aggregate in memory; there is no precomputed rollup.
type IReportUseCase interface {
	Cases(ctx context.Context, from, to *time.Time) (CasesReport, error)
	Revenue(ctx context.Context, from, to *time.Time) (RevenueReport, error)
	ExpertsPerformance(ctx context.Context, from, to *time.Time) ([]ExpertPerformance, error)
}

type ReportUseCase struct {
	cases       interfaces.ICaseRepository
	payments    interfaces.IPaymentRepository
	evaluations interfaces.IEvaluationRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(cases interfaces.ICaseRepository, payments interfaces.IPaymentRepository, evaluations interfaces.IEvaluationRepository) *ReportUseCase {
	return &ReportUseCase{cases: cases, payments: payments, evaluations: evaluations}
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func (u *ReportUseCase) Cases(ctx context.Context, from, to *time.Time) (CasesReport, error) {
	all, err := u.cases.List(ctx)
	if err != nil {
		return CasesReport{}, err
	}

	rep := CasesReport{From: from, To: to, ByStatus: map[string]int{}}
	for _, c := range all {
		if !inRange(c.CreatedAt, from, to) {
			continue
		}
		rep.Total++
		rep.ByStatus[string(c.Status)]++
	}
	return rep, nil
}

func (u *ReportUseCase) Revenue(ctx context.Context, from, to *time.Time) (RevenueReport, error) {
	all, err := u.payments.List(ctx)
	if err != nil {
		return RevenueReport{}, err
	}

	rep := RevenueReport{From: from, To: to}
	for _, p := range all {
		if !inRange(p.CreatedAt, from, to) {
			continue
		}
		rep.PaymentsCount++
		switch p.Status {
		case entities.PaymentStatusPagado:
			rep.TotalPaid += p.Amount
		case entities.PaymentStatusPendiente:
			rep.TotalPending += p.Amount
		}
	}
	return rep, nil
}

func (u *ReportUseCase) ExpertsPerformance(ctx context.Context, from, to *time.Time) ([]ExpertPerformance, error) {
	all, err := u.evaluations.List(ctx)
	if err != nil {
		return nil, err
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	order := []string{}
	for _, e := range all {
		if !inRange(e.CreatedAt, from, to) {
			continue
		}
		if _, seen := counts[e.ExpertID]; !seen {
			order = append(order, e.ExpertID)
		}
		sums[e.ExpertID] += e.FinalScore
		counts[e.ExpertID]++
	}

	rows := make([]ExpertPerformance, 0, len(order))
	for _, id := range order {
		rows = append(rows, ExpertPerformance{
			ExpertID:     id,
			Evaluations:  counts[id],
			AverageScore: sums[id] / float64(counts[id]),
		})
	}
	return rows, nil
}
