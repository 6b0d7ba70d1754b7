package repository

import (
	"context"
	"database/sql"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

type InvoiceRepository struct {
	db DBTX
}

func NewInvoiceRepository(db DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) ListByVendor(ctx context.Context, vendorID string) ([]*entity.Invoice, error) {
	query := `
		SELECT id, vendor_id, invoice_number, amount, tier, billing_period, status,
		       payment_method, payfast_payment_id, billing_email, billing_name, billing_phone,
		       created_at, paid_at, due_date
		FROM subscription_invoices
		WHERE vendor_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Invoice, 0)
	for rows.Next() {
		item := &entity.Invoice{}
		if err := scanInvoice(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanInvoice(scanner rowScanner, item *entity.Invoice) error {
	var paymentMethod, externalPaymentID sql.NullString
	var billingEmail, billingName, billingPhone sql.NullString
	var paidAt, dueDate sql.NullTime

	err := scanner.Scan(
		&item.ID,
		&item.VendorID,
		&item.InvoiceNumber,
		&item.Amount,
		&item.Tier,
		&item.BillingPeriod,
		&item.Status,
		&paymentMethod,
		&externalPaymentID,
		&billingEmail,
		&billingName,
		&billingPhone,
		&item.CreatedAt,
		&paidAt,
		&dueDate,
	)
	if err != nil {
		return err
	}

	item.PaymentMethod = stringPtr(paymentMethod)
	item.ExternalPaymentID = stringPtr(externalPaymentID)
	item.BillingEmail = stringPtr(billingEmail)
	item.BillingName = stringPtr(billingName)
	item.BillingPhone = stringPtr(billingPhone)
	item.PaidAt = timePtr(paidAt)
	item.DueDate = timePtr(dueDate)

	return nil
}
