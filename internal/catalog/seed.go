// Copyright (c) 2026 Shopora. All rights reserved.
// Author: lam.nguyen.dev@gmail.com

package catalog

import "github.com/lamnguyen/shopora/pkg/slug"

// SeedProducts returns the built-in storefront inventory.
//
// Slugs are derived from the product names at seed time so they stay
// consistent with whatever the merchandising copy says.
func SeedProducts() []Product {
	products := []Product{
		{
			ID:            "prod-101",
			Name:          "iPhone 15 Pro Max 256GB",
			Price:         9999,
			OriginalPrice: 10999,
			ImageURL:      "/images/products/iphone-15-pro-max.jpg",
			Category:      "electronics",
			Brand:         "Apple",
			Stock:         50,
			Specifications: map[string]string{
				"storage": "256GB",
				"color":   "Black Titanium",
			},
		},
		{
			ID:            "prod-102",
			Name:          "MacBook Pro 14 M3",
			Price:         14999,
			OriginalPrice: 15999,
			ImageURL:      "/images/products/macbook-pro-14.jpg",
			Category:      "electronics",
			Brand:         "Apple",
			Stock:         30,
			Specifications: map[string]string{
				"chip":  "M3",
				"color": "Silver",
			},
		},
		{
			ID:       "prod-103",
			Name:     "Nike Air Jordan 1 Limited Edition",
			Price:    1299,
			ImageURL: "/images/products/air-jordan-1.jpg",
			Category: "fashion",
			Brand:    "Nike",
			Stock:    20,
		},
		{
			ID:       "prod-104",
			Name:     "Xiaomi 14 Ultra 512GB",
			Price:    5999,
			ImageURL: "/images/products/xiaomi-14-ultra.jpg",
			Category: "electronics",
			Brand:    "Xiaomi",
			Stock:    40,
			Specifications: map[string]string{
				"storage": "512GB",
			},
		},
		{
			ID:       "prod-105",
			Name:     "Dyson V15 Cordless Vacuum",
			Price:    3999,
			ImageURL: "/images/products/dyson-v15.jpg",
			Category: "home",
			Brand:    "Dyson",
			Stock:    15,
		},
		{
			ID:       "prod-106",
			Name:     "Apple Watch Series 9 45mm",
			Price:    2999,
			ImageURL: "/images/products/apple-watch-s9.jpg",
			Category: "electronics",
			Brand:    "Apple",
			Stock:    60,
			Specifications: map[string]string{
				"size": "45mm",
			},
		},
		{
			ID:       "prod-123",
			Name:     "Elegant Smartwatch Series 7",
			Price:    299.99,
			ImageURL: "/images/products/smartwatch-series-7.jpg",
			Category: "electronics",
			Stock:    10,
		},
		{
			ID:       "prod-456",
			Name:     "Wireless Noise-Cancelling Headphones",
			Price:    199.50,
			ImageURL: "/images/products/nc-headphones.jpg",
			Category: "electronics",
			Stock:    5,
		},
	}

	for index := range products {
		products[index].Slug = slug.From(products[index].Name)
	}

	return products
}
