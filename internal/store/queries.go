package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Brand queries.
const (
	queryListBrands = `
		SELECT id, name
		FROM brands
		ORDER BY name, id`

	queryUpsertBrand = `
		INSERT INTO brands (id, name, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = now()`

	queryDeleteBrandsNotIn = `
		DELETE FROM brands
		WHERE NOT (id = ANY($1))`
)

// Product queries.
const (
	queryProductsByBrand = `
		SELECT id_product, id_brand, subcategory, chars_group,
			total_qty, price, country_abbr
		FROM products
		WHERE id_brand = $1
		ORDER BY price, id_product`

	queryDeleteProductsByBrand = `
		DELETE FROM products
		WHERE id_brand = $1`

	queryCountProducts = `SELECT COUNT(*) FROM products`
)

// productColumns is the CopyFrom column list for the products table.
var productColumns = []string{
	"id_product", "id_brand", "subcategory", "chars_group",
	"total_qty", "price", "country_abbr",
}

// Change record queries.
const (
	queryInsertChangeRecord = `
		INSERT INTO price_changes (
			id, id_product, id_brand, change_type,
			old_value, new_value, old_price, new_price,
			old_quantity, new_quantity,
			product_name, brand_name, country_abbr, created_at
		) VALUES (
			@id, @id_product, @id_brand, @change_type,
			@old_value, @new_value, @old_price, @new_price,
			@old_quantity, @new_quantity,
			@product_name, @brand_name, @country_abbr, @created_at
		)`

	queryListChangeRecords = `
		SELECT id, id_product, id_brand, change_type,
			old_value, new_value, old_price, new_price,
			old_quantity, new_quantity,
			product_name, brand_name, country_abbr, created_at
		FROM price_changes
		ORDER BY created_at, seq`

	queryClearChangeRecords = `DELETE FROM price_changes`
)

// Subscriber queries.
const (
	queryListSubscribers = `
		SELECT user_id, receive_apple, receive_other
		FROM subscribers
		ORDER BY user_id`

	queryUpsertSubscriber = `
		INSERT INTO subscribers (user_id, receive_apple, receive_other, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id) DO UPDATE SET
			receive_apple = EXCLUDED.receive_apple,
			receive_other = EXCLUDED.receive_other,
			updated_at = now()`
)

// Token queries.
const (
	queryGetToken = `
		SELECT service_name, token, expires_at
		FROM tokens
		WHERE service_name = $1`

	querySaveToken = `
		INSERT INTO tokens (service_name, token, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (service_name) DO UPDATE SET
			token = EXCLUDED.token,
			expires_at = EXCLUDED.expires_at,
			updated_at = now()`

	queryDeleteToken = `
		DELETE FROM tokens
		WHERE service_name = $1`

	queryDeleteExpiredTokens = `
		DELETE FROM tokens
		WHERE expires_at < $1`
)

// Cycle run queries.
const (
	queryInsertCycleRun = `
		INSERT INTO cycle_runs (id, started_at, status)
		VALUES ($1, now(), 'running')`

	queryCompleteCycleRun = `
		UPDATE cycle_runs SET
			completed_at = now(),
			status = $2,
			brands_total = $3,
			brands_failed = $4,
			changes = $5,
			error_text = NULLIF($6, '')
		WHERE id = $1`

	queryListCycleRuns = `
		SELECT id, started_at, completed_at, status,
			brands_total, brands_failed, changes, COALESCE(error_text, '')
		FROM cycle_runs
		ORDER BY started_at DESC
		LIMIT $1`
)
