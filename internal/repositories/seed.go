package repository

import "github.com/shophub/storefront/internal/models"

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Price:       129.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop",
			Description: "Premium wireless headphones with noise cancellation",
			Category:    "Electronics",
			Stock:       50,
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Price:       299.99,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&h=500&fit=crop",
			Description: "Feature-rich smartwatch with fitness tracking",
			Category:    "Electronics",
			Stock:       30,
		},
		{
			ID:          "3",
			Name:        "Leather Backpack",
			Price:       89.99,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=500&fit=crop",
			Description: "Durable leather backpack perfect for daily use",
			Category:    "Accessories",
			Stock:       25,
		},
		{
			ID:          "4",
			Name:        "Sunglasses",
			Price:       149.99,
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500&h=500&fit=crop",
			Description: "Classic aviator sunglasses with UV protection",
			Category:    "Accessories",
			Stock:       40,
		},
		{
			ID:          "5",
			Name:        "Running Shoes",
			Price:       119.99,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=500&fit=crop",
			Description: "Comfortable running shoes with superior cushioning",
			Category:    "Footwear",
			Stock:       60,
		},
		{
			ID:          "6",
			Name:        "Coffee Maker",
			Price:       79.99,
			Image:       "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=500&h=500&fit=crop",
			Description: "Programmable coffee maker for perfect brew every time",
			Category:    "Home",
			Stock:       35,
		},
		{
			ID:          "7",
			Name:        "Yoga Mat",
			Price:       34.99,
			Image:       "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500&h=500&fit=crop",
			Description: "Non-slip yoga mat with extra cushioning",
			Category:    "Fitness",
			Stock:       100,
		},
		{
			ID:          "8",
			Name:        "Desk Lamp",
			Price:       45.99,
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500&h=500&fit=crop",
			Description: "LED desk lamp with adjustable brightness",
			Category:    "Home",
			Stock:       45,
		},
		{
			ID:          "9",
			Name:        "Bluetooth Speaker",
			Price:       69.99,
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&h=500&fit=crop",
			Description: "Portable speaker with 360-degree sound",
			Category:    "Electronics",
			Stock:       55,
		},
		{
			ID:          "10",
			Name:        "Water Bottle",
			Price:       24.99,
			Image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500&h=500&fit=crop",
			Description: "Insulated stainless steel water bottle",
			Category:    "Fitness",
			Stock:       80,
		},
		{
			ID:          "11",
			Name:        "Notebook Set",
			Price:       19.99,
			Image:       "https://images.unsplash.com/photo-1531346878377-a5be20888e57?w=500&h=500&fit=crop",
			Description: "Premium notebook set for journaling",
			Category:    "Stationery",
			Stock:       70,
		},
		{
			ID:          "12",
			Name:        "Plant Pot",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=500&h=500&fit=crop",
			Description: "Ceramic plant pot with drainage",
			Category:    "Home",
			Stock:       90,
		},
	}
}
