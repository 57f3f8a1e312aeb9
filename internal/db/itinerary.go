package db

import (
	"database/sql"
	"fmt"
	"strings"

	"tabi/internal/model"
)

const featureSeparator = "|"

// SaveItinerary replaces the snapshot with days in a single transaction.
func SaveItinerary(db *sql.DB, days []model.Day) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"highlights", "accommodations", "activities", "days"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, d := range days {
		if _, err := tx.Exec(
			`INSERT INTO days (id, date, area, title, description, total_cost, group_cost) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.Date, nullString(d.Area), d.Title, nullString(d.Description), d.TotalCost, boolInt(d.GroupCost),
		); err != nil {
			return fmt.Errorf("failed to insert day %d: %w", d.ID, err)
		}

		for i, a := range d.Activities {
			if _, err := tx.Exec(
				`INSERT INTO activities (day_id, position, time, description, category, cost, group_cost, location, previous_location, details, note)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				d.ID, i, nullString(a.Time), a.Description, nullString(string(a.Category)), a.Cost, boolInt(a.GroupCost),
				nullString(a.Location), nullString(a.PreviousLocation), nullString(a.Details), nullString(a.Note),
			); err != nil {
				return fmt.Errorf("failed to insert activity %d of day %d: %w", i, d.ID, err)
			}
		}

		if acc := d.Accommodation; acc != nil {
			if _, err := tx.Exec(
				`INSERT INTO accommodations (day_id, name, type, rating, price, features, location, check_in, check_out, nights)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				d.ID, acc.Name, nullString(acc.Type), acc.Rating, acc.Price, nullString(strings.Join(acc.Features, featureSeparator)),
				nullString(acc.Location), nullString(acc.CheckIn), nullString(acc.CheckOut), acc.Nights,
			); err != nil {
				return fmt.Errorf("failed to insert accommodation of day %d: %w", d.ID, err)
			}
		}

		for i, tag := range d.Highlights {
			if _, err := tx.Exec(`INSERT INTO highlights (day_id, position, tag) VALUES (?, ?, ?)`, d.ID, i, tag); err != nil {
				return fmt.Errorf("failed to insert highlight of day %d: %w", d.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// ListDays retrieves every exported day with its activity count and the
// name of the accommodation checked into that day, if any.
func ListDays(db *sql.DB) ([]model.DayRow, error) {
	query := `
		SELECT
			d.id,
			d.date,
			COALESCE(d.area, ''),
			d.title,
			d.total_cost,
			d.group_cost,
			(SELECT COUNT(*) FROM activities a WHERE a.day_id = d.id) AS activity_count,
			COALESCE(acc.name, '')
		FROM days d
		LEFT JOIN accommodations acc ON acc.day_id = d.id
		ORDER BY d.id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	defer rows.Close()

	var results []model.DayRow
	for rows.Next() {
		var r model.DayRow
		var groupCost int
		if err := rows.Scan(&r.ID, &r.Date, &r.Area, &r.Title, &r.TotalCost, &groupCost, &r.ActivityCount, &r.Accommodation); err != nil {
			return nil, fmt.Errorf("failed to scan day row: %w", err)
		}
		r.GroupCost = groupCost == 1
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day rows: %w", err)
	}

	return results, nil
}

// ListActivities retrieves one day's activities in schedule order.
func ListActivities(db *sql.DB, dayID int) ([]model.Activity, error) {
	query := `
		SELECT
			COALESCE(time, ''),
			description,
			COALESCE(category, ''),
			cost,
			group_cost,
			COALESCE(location, ''),
			COALESCE(previous_location, ''),
			COALESCE(details, ''),
			COALESCE(note, '')
		FROM activities
		WHERE day_id = ?
		ORDER BY position
	`

	rows, err := db.Query(query, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var results []model.Activity
	for rows.Next() {
		var a model.Activity
		var category string
		var groupCost int
		if err := rows.Scan(&a.Time, &a.Description, &category, &a.Cost, &groupCost, &a.Location, &a.PreviousLocation, &a.Details, &a.Note); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		a.Category = model.Category(category)
		a.GroupCost = groupCost == 1
		results = append(results, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return results, nil
}

// GetAccommodation retrieves the accommodation checked into on a day. It
// returns nil when there is none.
func GetAccommodation(db *sql.DB, dayID int) (*model.Accommodation, error) {
	query := `
		SELECT name, COALESCE(type, ''), COALESCE(rating, 0), COALESCE(price, 0), COALESCE(features, ''),
		       COALESCE(location, ''), COALESCE(check_in, ''), COALESCE(check_out, ''), COALESCE(nights, 0)
		FROM accommodations
		WHERE day_id = ?
	`

	var acc model.Accommodation
	var features string
	err := db.QueryRow(query, dayID).Scan(
		&acc.Name, &acc.Type, &acc.Rating, &acc.Price, &features,
		&acc.Location, &acc.CheckIn, &acc.CheckOut, &acc.Nights,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get accommodation: %w", err)
	}
	if features != "" {
		acc.Features = strings.Split(features, featureSeparator)
	}
	return &acc, nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
