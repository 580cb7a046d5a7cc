package inspections

import (
	"fmt"

	"stockroom/internal/repository"
	custom_error "stockroom/pkg/errors"
	"stockroom/pkg/metadata"
	"stockroom/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type InspectionRepository struct {
	Repo *repository.Repository
}

func NewRepository(r *repository.Repository) *InspectionRepository {
	return &InspectionRepository{Repo: r}
}

func (r *InspectionRepository) certificateQuery() *goqu.SelectDataset {
	return r.Repo.GoquDBWrapper.
		Select(
			goqu.I("c.id").As("id"),
			goqu.I("c.certificate_no").As("certificate_no"),
			goqu.I("c.status").As("status"),
			goqu.L("to_char(c.inspection_date, 'YYYY-MM-DD')").As("inspection_date"),
			goqu.I("c.inspected_by").As("inspected_by"),
			goqu.I("c.contract_no").As("contract_no"),
			goqu.I("c.contractor_name").As("contractor_name"),
			goqu.I("c.indenter").As("indenter"),
			goqu.I("c.indent_no").As("indent_no"),
			goqu.I("c.consignee").As("consignee"),
			goqu.I("c.department").As("department"),
			goqu.I("c.receiving_store_id").As("receiving_store_id"),
			goqu.I("l.name").As("receiving_store_name"),
			goqu.I("c.remarks").As("remarks"),
		).
		From(goqu.T("inspection_certificates").As("c")).
		LeftJoin(
			goqu.T("locations").As("l"),
			goqu.On(goqu.Ex{"c.receiving_store_id": goqu.I("l.id")}),
		)
}

func (r *InspectionRepository) GetCertificates() (*[]models.InspectionCertificate, error) {
	var certificates = []models.InspectionCertificate{}
	query := r.certificateQuery().Order(goqu.I("c.id").Desc())
	if err := query.Executor().ScanStructs(&certificates); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return &certificates, nil
}

func (r *InspectionRepository) GetCertificate(certificateID int) (*models.InspectionCertificate, error) {
	var certificate models.InspectionCertificate
	found, err := r.certificateQuery().
		Where(goqu.Ex{"c.id": certificateID}).
		Executor().
		ScanStruct(&certificate)
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFoundError("inspection certificate", fmt.Sprint(certificateID))
	}

	lines, err := r.GetCertificateLines(certificateID)
	if err != nil {
		return nil, err
	}
	certificate.Items = lines

	return &certificate, nil
}

func (r *InspectionRepository) GetCertificateLines(certificateID int) ([]models.InspectionLine, error) {
	var lines = []models.InspectionLine{}

	query := r.Repo.GoquDBWrapper.
		Select(
			goqu.I("il.id").As("id"),
			goqu.I("il.item_id").As("item_id"),
			goqu.I("i.name").As("item_name"),
			goqu.I("il.tendered_quantity").As("tendered_quantity"),
			goqu.I("il.accepted_quantity").As("accepted_quantity"),
			goqu.I("il.rejected_quantity").As("rejected_quantity"),
			goqu.I("il.unit_price").As("unit_price"),
			goqu.I("il.remarks").As("remarks"),
		).
		From(goqu.T("inspection_lines").As("il")).
		LeftJoin(
			goqu.T("items").As("i"),
			goqu.On(goqu.Ex{"il.item_id": goqu.I("i.id")}),
		).
		Where(goqu.Ex{"il.certificate_id": certificateID}).
		Order(goqu.I("il.id").Asc())

	if err := query.Executor().ScanStructs(&lines); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return lines, nil
}

func (r *InspectionRepository) PersistCertificate(req models.InspectionRequest) (int, error) {
	var certificateID int

	err := repository.WithTransaction(r.Repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		query := tx.Insert("inspection_certificates").
			Rows(goqu.Record{
				"certificate_no":     req.CertificateNo,
				"status":             metadata.CertificateDraft.String(),
				"inspection_date":    req.Date,
				"inspected_by":       req.InspectedBy,
				"contract_no":        req.ContractNo,
				"contractor_name":    req.ContractorName,
				"indenter":           req.Indenter,
				"indent_no":          req.IndentNo,
				"consignee":          req.Consignee,
				"department":         req.Department,
				"receiving_store_id": req.ReceivingStore,
				"remarks":            req.Remarks,
			}).
			Returning("id")

		if _, err := query.Executor().ScanVal(&certificateID); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return custom_error.WrapDBError("Duplicate certificate number", string(pqErr.Code))
			}
			return fmt.Errorf("failed to insert certificate record: %w", err)
		}

		return r.insertLines(tx, certificateID, req.Items)
	})
	if err != nil {
		return 0, err
	}

	return certificateID, nil
}

func (r *InspectionRepository) UpdateCertificate(certificateID int, req models.InspectionRequest) error {
	return repository.WithTransaction(r.Repo.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		result, err := tx.Update("inspection_certificates").
			Set(goqu.Record{
				"certificate_no":     req.CertificateNo,
				"inspection_date":    req.Date,
				"inspected_by":       req.InspectedBy,
				"contract_no":        req.ContractNo,
				"contractor_name":    req.ContractorName,
				"indenter":           req.Indenter,
				"indent_no":          req.IndentNo,
				"consignee":          req.Consignee,
				"department":         req.Department,
				"receiving_store_id": req.ReceivingStore,
				"remarks":            req.Remarks,
			}).
			Where(goqu.Ex{
				"id":     certificateID,
				"status": metadata.CertificateDraft.String(),
			}).
			Executor().
			Exec()
		if err != nil {
			return fmt.Errorf("failed to update certificate: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("could not retrieve rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return custom_error.NewNotFoundError("draft inspection certificate", fmt.Sprint(certificateID))
		}

		if _, err := tx.Delete("inspection_lines").
			Where(goqu.Ex{"certificate_id": certificateID}).
			Executor().
			Exec(); err != nil {
			return fmt.Errorf("failed to clear certificate lines: %w", err)
		}

		return r.insertLines(tx, certificateID, req.Items)
	})
}

func (r *InspectionRepository) insertLines(tx *goqu.TxDatabase, certificateID int, lines []models.InspectionLineRequest) error {
	var records []goqu.Record
	for _, line := range lines {
		records = append(records, goqu.Record{
			"certificate_id":    certificateID,
			"item_id":           line.Item,
			"tendered_quantity": line.TenderedQuantity,
			"accepted_quantity": line.AcceptedQuantity,
			"rejected_quantity": line.RejectedQuantity,
			"unit_price":        line.UnitPrice,
			"remarks":           line.Remarks,
		})
	}

	if _, err := tx.Insert("inspection_lines").Rows(records).Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert certificate lines: %w", err)
	}

	return nil
}

func (r *InspectionRepository) UpdateStatus(tx *goqu.TxDatabase, certificateID int, status metadata.CertificateStatus) error {
	_, err := tx.Update("inspection_certificates").
		Set(goqu.Record{"status": status.String()}).
		Where(goqu.Ex{"id": certificateID}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update certificate %d status: %w", certificateID, err)
	}

	return nil
}
