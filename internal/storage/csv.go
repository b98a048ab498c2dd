package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/ledger"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/model"
)

// Column layouts are fixed; files are always written with these headers.
var (
	stockColumns  = []string{"Categorie", "Sous-categorie", "Produit", "Prix unitaire", "Quantite", "Date", "Quantite_initiale"}
	ventesColumns = []string{"Categorie", "Sous-categorie", "Produit", "Prix unitaire", "Quantite vendue", "Date", "Total"}
)

// readTable reads a CSV file into header-keyed rows. A missing file is not
// an error: the caller starts with an empty table.
func readTable(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture de %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("lecture de %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseDecimal coerces a cell to a decimal, treating blanks and garbage as 0
// the way the source fills NaN with 0 on load.
func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func loadStock(path string, ventes *ledger.SalesLedger) (*ledger.StockLedger, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	items := make([]model.StockItem, 0, len(rows))
	backfilled := 0
	for _, row := range rows {
		item := model.StockItem{
			Categorie:     row["Categorie"],
			SousCategorie: row["Sous-categorie"],
			Produit:       row["Produit"],
			PrixUnitaire:  parseDecimal(row["Prix unitaire"]),
			Quantite:      parseDecimal(row["Quantite"]),
		}
		if d, err := model.ParseDate(row["Date"]); err == nil {
			item.Date = d
		}

		if qi, ok := row["Quantite_initiale"]; ok && qi != "" {
			item.QuantiteInitiale = parseDecimal(qi)
		} else {
			// Legacy file without the column: approximate the initial
			// quantity as current quantity plus historical units sold.
			item.QuantiteInitiale = item.Quantite.Add(ventes.QuantiteVendueFor(item.Categorie, item.Produit))
			backfilled++
		}
		items = append(items, item)
	}

	if backfilled > 0 {
		log.Warn().
			Int("rows", backfilled).
			Msg("Quantite_initiale absente du fichier stock, valeur estimée (quantité + ventes historiques)")
	}
	return ledger.NewStockLedger(items), nil
}

func loadVentes(path string) (*ledger.SalesLedger, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	sales := make([]model.Sale, 0, len(rows))
	for _, row := range rows {
		sale := model.Sale{
			Categorie:      row["Categorie"],
			SousCategorie:  row["Sous-categorie"],
			Produit:        row["Produit"],
			PrixUnitaire:   parseDecimal(row["Prix unitaire"]),
			QuantiteVendue: parseDecimal(row["Quantite vendue"]),
			Total:          parseDecimal(row["Total"]),
		}
		// Mixed "dd/mm/yyyy" and "dd-mm-yyyy" accepted; normalized on save.
		if d, err := model.ParseDate(row["Date"]); err == nil {
			sale.Date = d
		}
		sales = append(sales, sale)
	}
	return ledger.NewSalesLedger(sales), nil
}

// writeTable writes header+records to a temp file in the same directory and
// renames it into place, so a failed write never truncates the live file.
func writeTable(path string, header []string, records [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("écriture de %s: %w", path, err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err == nil {
		err = w.WriteAll(records)
	}
	w.Flush()
	if err == nil {
		err = w.Error()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("écriture de %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("écriture de %s: %w", path, err)
	}
	return nil
}

func saveStock(path string, stock *ledger.StockLedger) error {
	items := stock.Items()
	records := make([][]string, 0, len(items))
	for _, it := range items {
		records = append(records, []string{
			it.Categorie,
			it.SousCategorie,
			it.Produit,
			it.PrixUnitaire.String(),
			it.Quantite.String(),
			model.FormatDate(it.Date),
			it.QuantiteInitiale.String(),
		})
	}
	return writeTable(path, stockColumns, records)
}

func saveVentes(path string, ventes *ledger.SalesLedger) error {
	sales := ventes.List()
	records := make([][]string, 0, len(sales))
	for _, s := range sales {
		records = append(records, []string{
			s.Categorie,
			s.SousCategorie,
			s.Produit,
			s.PrixUnitaire.String(),
			s.QuantiteVendue.String(),
			model.FormatDate(s.Date),
			s.Total.String(),
		})
	}
	return writeTable(path, ventesColumns, records)
}
