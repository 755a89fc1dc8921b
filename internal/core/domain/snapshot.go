package domain

// Snapshot is the persisted durable-storage shape. Only items survive a
// restart; loading and error flags are transient and rebuilt as zero values
// on rehydration.
type Snapshot struct {
	Products ProductItems `json:"products"`
	Orders   OrderItems   `json:"orders"`
}

type ProductItems struct {
	Items []Product `json:"items"`
}

type OrderItems struct {
	Items []Order `json:"items"`
}
