// Package excel genera el reporte de inventario en formato XLSX.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/repository"
)

// InventoryExporter arma un libro con una hoja de herramientas y otra de
// productos, a partir del estado actual del inventario.
type InventoryExporter struct {
	toolRepo    repository.ToolRepository
	productRepo repository.ProductRepository
}

// NewInventoryExporter construye el exportador.
func NewInventoryExporter(toolRepo repository.ToolRepository, productRepo repository.ProductRepository) *InventoryExporter {
	return &InventoryExporter{toolRepo: toolRepo, productRepo: productRepo}
}

// Export devuelve los bytes del archivo XLSX.
func (e *InventoryExporter) Export() ([]byte, error) {
	tools, err := e.toolRepo.List()
	if err != nil {
		return nil, fmt.Errorf("excel: listar herramientas: %w", err)
	}
	products, err := e.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("excel: listar productos: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// La hoja por defecto pasa a ser la de herramientas.
	toolSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(toolSheet, "Herramientas"); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	header := []interface{}{
		"id", "nombre", "marca", "modelo", "serie",
		"categoria", "estado", "cantidad", "unidad", "barcode", "qr",
	}
	if err := f.SetSheetRow("Herramientas", "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabecera herramientas: %w", err)
	}
	for i, t := range tools {
		row := []interface{}{
			t.ID, t.Name, t.Brand, t.Model, t.Serial,
			t.Category, t.State, t.Quantity.String(), t.UnitMeasure, t.Barcode, t.QRCode,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow("Herramientas", cell, &row); err != nil {
			return nil, fmt.Errorf("excel: fila herramienta: %w", err)
		}
	}

	if _, err := f.NewSheet("Productos"); err != nil {
		return nil, fmt.Errorf("excel: hoja productos: %w", err)
	}
	productHeader := []interface{}{
		"id", "nombre", "sku", "categoria", "cantidad", "unidad",
		"barcode", "ultima_entrada", "ultima_salida",
	}
	if err := f.SetSheetRow("Productos", "A1", &productHeader); err != nil {
		return nil, fmt.Errorf("excel: cabecera productos: %w", err)
	}
	for i, p := range products {
		lastEntry := ""
		if p.LastEntryDate != nil {
			lastEntry = p.LastEntryDate.Format("2006-01-02 15:04")
		}
		lastExit := ""
		if p.LastExitDate != nil {
			lastExit = p.LastExitDate.Format("2006-01-02 15:04")
		}
		row := []interface{}{
			p.ID, p.Name, p.SKU, p.Category, p.Quantity.String(), p.UnitMeasure,
			p.Barcode, lastEntry, lastExit,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow("Productos", cell, &row); err != nil {
			return nil, fmt.Errorf("excel: fila producto: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
