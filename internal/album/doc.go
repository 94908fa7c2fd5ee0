// Package album holds the domain model for the production tracker: songs,
// their ordered production stages, the album-level aggregations derived from
// them, and the validators that keep tempo, duration, and progress values
// inside their at-rest ranges. Everything here is pure; persistence and
// rendering live elsewhere.
package album
