package order

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
	"fulfillment/internal/service/intake"
	"fulfillment/internal/service/lifecycle"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `global_id, order_number, type, items,
		subtotal_cents, shipping_cents, discount_cents, total_cents,
		payment_method,
		first_name, last_name, phone, street, city, state, postal_code,
		latitude, longitude,
		delivery_status, courier_id, order_date, updated_at`

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel, err := FromDomain(&orderEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `
		INSERT INTO orders (global_id, order_number, type, items,
			subtotal_cents, shipping_cents, discount_cents, total_cents,
			payment_method,
			first_name, last_name, phone, street, city, state, postal_code,
			latitude, longitude,
			delivery_status, courier_id, order_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, NOW())
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderModel.GlobalID,
		orderModel.OrderNumber,
		orderModel.Type,
		orderModel.Items,
		orderModel.SubtotalCents,
		orderModel.ShippingCents,
		orderModel.DiscountCents,
		orderModel.TotalCents,
		orderModel.PaymentMethod,
		orderModel.FirstName,
		orderModel.LastName,
		orderModel.Phone,
		orderModel.Street,
		orderModel.City,
		orderModel.State,
		orderModel.PostalCode,
		orderModel.Latitude,
		orderModel.Longitude,
		orderModel.DeliveryStatus,
		orderModel.CourierID,
		orderModel.OrderDate,
	)

	created, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, intake.ErrDuplicateOrder
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(created)
}

func (r *Repository) GetByGlobalID(ctx context.Context, globalID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE global_id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, globalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderModel)
}

// UpdateStatus - оптимистичный коммит перехода: строка меняется только
// если персистентный статус все еще тот, от которого уходим. Ноль строк
// означает проигранную гонку.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	globalID string,
	from entities.DeliveryStatusType,
	to entities.DeliveryStatusType,
) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET delivery_status = $3,
			updated_at = NOW()
		WHERE global_id = $1
		  AND delivery_status = $2
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, globalID, from.String(), to.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lifecycle.ErrInvalidTransition
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(orderModel)
}

// BindCourier привязывает курьера только к pending-заказу без курьера,
// поэтому повторное назначение проигрывает на уровне БД.
func (r *Repository) BindCourier(ctx context.Context, globalID string, courierID int64) error {
	query := `
		UPDATE orders
		SET courier_id = $2,
			updated_at = NOW()
		WHERE global_id = $1
		  AND delivery_status = 'pending'
		  AND courier_id IS NULL`

	result, err := r.querier.Exec(ctx, query, globalID, courierID)
	if err != nil {
		return fmt.Errorf("unexpected order repository bind courier error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return lifecycle.ErrInvalidTransition
	}

	return nil
}

// List отдает страницу и полное число совпадений одним стейтментом:
// оконный COUNT(*) считается в том же снапшоте, что и строки страницы.
func (r *Repository) List(ctx context.Context, scope entities.ListScope) ([]entities.Order, int64, error) {
	conditions := buildConditions(scope)

	query, args, err := qb.
		Select(orderColumns, "COUNT(*) OVER () AS total_matching").
		From("orders").
		Where(conditions).
		OrderBy("order_date DESC", "global_id ASC").
		Limit(scope.Limit).
		Offset(scope.Offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	var ordersDB []OrderDB
	var total int64
	for rows.Next() {
		orderModel, rowTotal, err := scanListedRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		ordersDB = append(ordersDB, *orderModel)
		total = rowTotal
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	if len(ordersDB) == 0 {
		// страница за пределами результата: окно пустое, total добираем отдельно
		total, err = r.count(ctx, conditions)
		if err != nil {
			return nil, 0, err
		}
	}

	items, err := ToDomainList(ordersDB)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return items, total, nil
}

func (r *Repository) count(ctx context.Context, conditions sq.And) (int64, error) {
	query, args, err := qb.
		Select("COUNT(*)").
		From("orders").
		Where(conditions).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return total, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.DeliveryStatusType]int64, error) {
	query := `
		SELECT delivery_status, COUNT(*)
		FROM orders
		GROUP BY delivery_status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.DeliveryStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
		}
		counts[entities.DeliveryStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}

	return counts, nil
}

func buildConditions(scope entities.ListScope) sq.And {
	conditions := sq.And{}

	if scope.CourierID != nil {
		conditions = append(conditions, sq.Eq{"courier_id": *scope.CourierID})
	}
	if scope.Filter.Status != entities.FilterAll && scope.Filter.Status != "" {
		conditions = append(conditions, sq.Eq{"delivery_status": scope.Filter.Status})
	}
	if scope.Filter.Type != entities.FilterAll && scope.Filter.Type != "" {
		conditions = append(conditions, sq.Eq{"type": scope.Filter.Type})
	}
	if scope.Filter.Search != "" {
		pattern := "%" + scope.Filter.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.Expr("CAST(order_number AS TEXT) ILIKE ?", pattern),
			sq.Expr("first_name ILIKE ?", pattern),
			sq.Expr("last_name ILIKE ?", pattern),
			sq.Expr("street ILIKE ?", pattern),
		})
	}

	if len(conditions) == 0 {
		// squirrel не умеет пустой And в Where
		conditions = append(conditions, sq.Expr("TRUE"))
	}

	return conditions
}

type scannable interface {
	Scan(dest ...any) error
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	return scanOrderRow(row)
}

func scanListedRow(row scannable) (*OrderDB, int64, error) {
	var orderModel OrderDB
	var total int64
	err := row.Scan(
		&orderModel.GlobalID,
		&orderModel.OrderNumber,
		&orderModel.Type,
		&orderModel.Items,
		&orderModel.SubtotalCents,
		&orderModel.ShippingCents,
		&orderModel.DiscountCents,
		&orderModel.TotalCents,
		&orderModel.PaymentMethod,
		&orderModel.FirstName,
		&orderModel.LastName,
		&orderModel.Phone,
		&orderModel.Street,
		&orderModel.City,
		&orderModel.State,
		&orderModel.PostalCode,
		&orderModel.Latitude,
		&orderModel.Longitude,
		&orderModel.DeliveryStatus,
		&orderModel.CourierID,
		&orderModel.OrderDate,
		&orderModel.UpdatedAt,
		&total,
	)
	if err != nil {
		return nil, 0, err
	}
	return &orderModel, total, nil
}

func scanOrderRow(row scannable) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.GlobalID,
		&orderModel.OrderNumber,
		&orderModel.Type,
		&orderModel.Items,
		&orderModel.SubtotalCents,
		&orderModel.ShippingCents,
		&orderModel.DiscountCents,
		&orderModel.TotalCents,
		&orderModel.PaymentMethod,
		&orderModel.FirstName,
		&orderModel.LastName,
		&orderModel.Phone,
		&orderModel.Street,
		&orderModel.City,
		&orderModel.State,
		&orderModel.PostalCode,
		&orderModel.Latitude,
		&orderModel.Longitude,
		&orderModel.DeliveryStatus,
		&orderModel.CourierID,
		&orderModel.OrderDate,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
