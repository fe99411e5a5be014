package mysql

// payload holds the full hotel document; the scalar columns mirror it for
// ad-hoc queries and are rewritten on every upsert.
const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, city, country, stars, rating, price_current, property_type, payload)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name          = VALUES(name),
  city          = VALUES(city),
  country       = VALUES(country),
  stars         = VALUES(stars),
  rating        = VALUES(rating),
  price_current = VALUES(price_current),
  property_type = VALUES(property_type),
  payload       = VALUES(payload),
  updated_at    = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getHotelSQL = `
SELECT payload
FROM hotels
WHERE id = ?
`

// Ids look like hotel-N; ordering by length first keeps hotel-2 before hotel-10.
const listHotelsSQL = `
SELECT payload
FROM hotels
ORDER BY CHAR_LENGTH(id), id
`
