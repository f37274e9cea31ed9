package reports

import (
	"context"

	"github.com/tu-usuario/spog-api/internal/application/dto"
)

// ReportPDFGenerator genera la versión PDF del reporte de inventario.
// Lo implementa infrastructure/pdf con Maroto.
type ReportPDFGenerator interface {
	GenerateInventoryReportPDF(ctx context.Context, report *dto.InventoryReportDTO) ([]byte, error)
}
