package main

// Item representa um produto do inventário.
// quantity são as unidades disponíveis e reserved as unidades retidas por
// pedidos abertos; ambos nunca podem ficar negativos via reserva.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Reserved int     `json:"reserved"`
}

// lowStockThreshold é o limite fixo de alerta de estoque baixo:
// 0 < quantity < lowStockThreshold conta como low stock.
const lowStockThreshold = 20

// SeedItems retorna o catálogo inicial carregado na inicialização do serviço
func SeedItems() []Item {
	return []Item{
		{ID: 1, Name: "Laptop", Quantity: 50, Price: 999.99, Reserved: 0},
		{ID: 2, Name: "Mouse", Quantity: 200, Price: 29.99, Reserved: 0},
		{ID: 3, Name: "Keyboard", Quantity: 150, Price: 79.99, Reserved: 0},
		{ID: 4, Name: "Monitor", Quantity: 75, Price: 299.99, Reserved: 0},
		{ID: 5, Name: "Headphones", Quantity: 100, Price: 149.99, Reserved: 0},
	}
}

// InventoryStats é a visão derivada do inventário, recalculada a cada leitura
type InventoryStats struct {
	TotalValue float64
	OutOfStock int
	LowStock   int
}
