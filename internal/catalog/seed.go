package catalog

// DefaultSeed is the catalog every fresh process starts with.
func DefaultSeed() []NewProduct {
	return []NewProduct{
		{Name: "ASUS Laptop", Category: "Electronics", Description: "Powerful laptop for work and gaming", Price: 75000, Stock: 10, Rating: 4.5, Image: "https://via.placeholder.com/150?text=Notebook"},
		{Name: "Samsung Smartphone", Category: "Electronics", Description: "Latest model with a great camera", Price: 45000, Stock: 15, Rating: 4.7, Image: "https://via.placeholder.com/150?text=Phone"},
		{Name: `Book "JavaScript for Beginners"`, Category: "Books", Description: "Learning JavaScript from scratch", Price: 1200, Stock: 30, Rating: 4.8, Image: "https://via.placeholder.com/150?text=Book"},
		{Name: "Cotton T-shirt", Category: "Clothing", Description: "Quality cotton t-shirt", Price: 800, Stock: 50, Rating: 4.2, Image: "https://via.placeholder.com/150?text=T-shirt"},
		{Name: "Coffee Maker", Category: "Appliances", Description: "Automatic coffee maker for home", Price: 12000, Stock: 5, Rating: 4.6, Image: "https://via.placeholder.com/150?text=Coffee"},
		{Name: "Apple iPad", Category: "Electronics", Description: "10-inch tablet with a retina display", Price: 35000, Stock: 8, Rating: 4.9, Image: "https://via.placeholder.com/150?text=iPad"},
		{Name: "Sony Headphones", Category: "Electronics", Description: "Wireless noise-cancelling headphones", Price: 8000, Stock: 12, Rating: 4.6, Image: "https://via.placeholder.com/150?text=Headphones"},
		{Name: "Nike Sneakers", Category: "Clothing", Description: "Running shoes", Price: 5500, Stock: 20, Rating: 4.4, Image: "https://via.placeholder.com/150?text=Nike"},
		{Name: "Backpack", Category: "Accessories", Description: "Waterproof laptop backpack", Price: 2500, Stock: 15, Rating: 4.3, Image: "https://via.placeholder.com/150?text=Backpack"},
		{Name: "Microwave", Category: "Appliances", Description: "Compact microwave oven", Price: 6000, Stock: 7, Rating: 4.2, Image: "https://via.placeholder.com/150?text=Microwave"},
	}
}
