package analytics

import (
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/application/dto"
	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

// recentMovementsLimit movimientos recientes a mostrar en el tablero.
const recentMovementsLimit = 10

// DashboardUseCase arma los agregados de la pantalla de inicio.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
	movRepo  repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, movRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, movRepo: movRepo}
}

// Summary devuelve conteos, stock total y los últimos movimientos.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	summary, err := uc.dashRepo.Summary()
	if err != nil {
		return nil, err
	}
	recent, err := uc.movRepo.ListRecent(recentMovementsLimit)
	if err != nil {
		return nil, err
	}

	movements := make([]dto.MovementResponse, 0, len(recent))
	for _, m := range recent {
		lines := make([]dto.MovementLineResponse, 0, len(m.Lines))
		for _, l := range m.Lines {
			lines = append(lines, dto.MovementLineResponse{
				ToolID:      l.ToolID,
				ToolName:    l.ToolName,
				ToolBarcode: l.ToolBarcode,
				Quantity:    l.Quantity,
			})
		}
		movements = append(movements, dto.MovementResponse{
			ID:        m.ID,
			Kind:      m.Kind,
			Lines:     lines,
			ActorID:   m.ActorID,
			ActorName: m.ActorName,
			Note:      m.Note,
			Project:   m.Project,
			PhotoRef:  m.PhotoRef,
			CreatedAt: m.CreatedAt,
		})
	}

	return &dto.DashboardResponse{
		Tools:             summary.Tools,
		Products:          summary.Products,
		Clients:           summary.Clients,
		Quotations:        summary.Quotations,
		TotalToolStock:    summary.TotalToolStock,
		TotalProductStock: summary.TotalProductStock,
		RecentMovements:   movements,
	}, nil
}
