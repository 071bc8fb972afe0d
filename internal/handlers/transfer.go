package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"rentdesk/internal/database"
	"rentdesk/internal/models"

	"github.com/gin-gonic/gin"
)

const timeLayout = "2006-01-02 15:04:05"

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ExportCSV streams every row of the named table as a CSV attachment with
// a fixed header.
func ExportCSV(c *gin.Context) {
	what := c.Param("entity")

	var header []string
	var rows [][]string

	switch what {
	case "properties":
		var props []models.Property
		database.DB.Order("id").Find(&props)
		header = []string{"id", "title", "district", "status", "price", "image"}
		for _, p := range props {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(p.ID), 10), p.Title, p.District, p.Status, formatNumber(p.Price), p.Image,
			})
		}
	case "employees":
		var emps []models.Employee
		database.DB.Order("id").Find(&emps)
		header = []string{"id", "name", "role", "permissions"}
		for _, e := range emps {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(e.ID), 10), e.Name, e.Role, e.Permissions,
			})
		}
	case "payments":
		var pays []models.Payment
		database.DB.Order("id").Find(&pays)
		header = []string{"id", "property", "tenant", "amount", "payment_type", "txn_id", "status", "created_at"}
		for _, p := range pays {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(p.ID), 10), p.Property, p.Tenant, formatNumber(p.Amount),
				p.PaymentType, p.TxnID, p.Status, p.CreatedAt.Format(timeLayout),
			})
		}
	default:
		c.String(http.StatusBadRequest, "Unknown export type")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", what))

	w := csv.NewWriter(c.Writer)
	_ = w.Write(header)
	_ = w.WriteAll(rows)
}

// ImportCSV inserts one row per CSV record. Each insert is an independent
// statement: a failure mid-file leaves earlier rows committed, the same
// partial-import behaviour bulk uploads have always had.
func ImportCSV(c *gin.Context) {
	what := c.Param("entity")
	switch what {
	case "properties", "employees", "payments":
	default:
		c.String(http.StatusBadRequest, "Unknown import type")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "No file uploaded")
		return
	}

	f, err := file.Open()
	if err != nil {
		c.String(http.StatusBadRequest, "No file uploaded")
		return
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		c.JSON(http.StatusOK, gin.H{"imported": true})
		return
	}
	if err != nil {
		c.String(http.StatusBadRequest, "Malformed CSV")
		return
	}

	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	get := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}
	num := func(rec []string, name string) float64 {
		v, err := strconv.ParseFloat(get(rec, name), 64)
		if err != nil {
			return 0
		}
		return v
	}

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			c.String(http.StatusBadRequest, "Malformed CSV")
			return
		}

		var insert error
		switch what {
		case "properties":
			status := get(rec, "status")
			if status == "" {
				status = "Available"
			}
			insert = database.DB.Create(&models.Property{
				Title:    get(rec, "title"),
				District: get(rec, "district"),
				Status:   status,
				Price:    num(rec, "price"),
				Image:    get(rec, "image"),
			}).Error
		case "employees":
			insert = database.DB.Create(&models.Employee{
				Name:        get(rec, "name"),
				Role:        get(rec, "role"),
				Permissions: get(rec, "permissions"),
			}).Error
		case "payments":
			status := get(rec, "status")
			if status == "" {
				status = "Pending"
			}
			insert = database.DB.Create(&models.Payment{
				Property:    get(rec, "property"),
				Tenant:      get(rec, "tenant"),
				Amount:      num(rec, "amount"),
				PaymentType: get(rec, "payment_type"),
				TxnID:       get(rec, "txn_id"),
				Status:      status,
			}).Error
		}
		if insert != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import row"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"imported": true})
}
