// Package queue defines message payloads exchanged over the message broker.
package queue

// StockAlertEvent is published when a mutation leaves a game low on or
// out of stock. It carries enough for downstream consumers to log or
// notify purchasing without querying the store.
type StockAlertEvent struct {
    GameID     uint64  `json:"game_id"`
    Title      string  `json:"title"`
    Publisher  string  `json:"publisher"`
    Stock      int     `json:"stock"`
    Price      float64 `json:"price"`
    Level      string  `json:"level"` // "low" or "out"
    OccurredAt string  `json:"occurred_at"`
}
