package main

import (
	"github.com/xpluscommerce/storefront-api/models"
	"gorm.io/gorm"
)

func ptr(v float64) *float64 { return &v }

// seedProducts loads the demo catalog on first boot. A non-empty table is left
// alone.
func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []models.Product{
		{
			Name:           "X-Plus Smart Watch Pro",
			Description:    "Premium Titanium Smart Watch with Heart Rate Monitoring, advanced sleep tracking, and up to 14-day battery life.",
			Price:          50.99,
			ImageURL:       "https://framerusercontent.com/images/xbiHeFVsvZXuJkr6gD9G8l4BVlQ.jpg",
			Category:       models.CategoryHotDeals,
			Specifications: "Display:1.43\" AMOLED;Battery:450mAh (14 Days);Sensors:SpO2, Heart Rate, ECG;Water Resistance:5ATM;Case:Titanium Alloy",
		},
		{
			Name:           "Apex Pro Game Pad",
			Description:    "Precision Wireless Gaming Controller featuring haptic feedback and adaptive triggers.",
			Price:          45.00,
			ImageURL:       "https://framerusercontent.com/images/6ZEeWmqH9cS37oJjcqtJy1wio.jpg",
			Category:       models.CategoryHotDeals,
			Specifications: "Connectivity:Wireless/USB-C;Battery:12 Hours;Feedback:DualSense Haptics;Compatibility:PC, PS5, Android;Weight:280g",
		},
		{
			Name:           "Mechanical Gaming Keyboard",
			Description:    "Pro-Grade RGB Mechanical Keyboard with programmable keys.",
			Price:          89.99,
			ImageURL:       "https://framerusercontent.com/images/G26NR3vaDPniJpjcXXAMXPfd3Lw.jpg",
			Category:       models.CategoryHotDeals,
			Specifications: "Switches:Cherry MX Blue;Lighting:Per-key RGB;Keys:104 Anti-ghosting;Frame:Aluminum;Cable:Braided USB-C",
		},
		{
			Name:           "Classic Heritage Analog",
			Description:    "Timeless Minimalist Quartz Business Watch featuring a premium Italian leather strap.",
			Price:          86.00,
			OriginalPrice:  ptr(120.00),
			ImageURL:       "https://framerusercontent.com/images/EFxcYveZp0Wwusii7P0jbzhTw.jpg",
			Category:       models.CategoryDiscounts,
			Specifications: "Movement:Swiss Quartz;Strap:Grain Leather;Glass:Sapphire Crystal;Diameter:40mm;Thickness:8mm",
		},
		{
			Name:           "X-Plus Smart Watch Gen 2",
			Description:    "Next-generation wearable with integrated GPS and blood oxygen sensor.",
			Price:          120.00,
			OriginalPrice:  ptr(180.00),
			ImageURL:       "https://framerusercontent.com/images/XU6DGRvG0p3HIg3UwQqeJcTTcUU.jpg",
			Category:       models.CategoryDiscounts,
			Specifications: "GPS:Built-in Glonass;Display:Retina LTPO;OS:WearOS Optimized;App Sync:iOS/Android;NFC:Contactless Pay",
		},
		{
			Name:           "SonicPro Surround Speaker",
			Description:    "High-Fidelity Bluetooth Surround Sound Speaker with deep bass technology.",
			Price:          65.99,
			OriginalPrice:  ptr(89.99),
			ImageURL:       "https://framerusercontent.com/images/DKUPStf71s3Z11LvdJwf9YKY3NY.jpg",
			Category:       models.CategoryDiscounts,
			Specifications: "Range:30m;Power:40W Peak;Driver:Dual 50mm;Battery:5200mAh;Bluetooth:5.3",
		},
		{
			Name:           "Titan 2TB NVMe SSD",
			Description:    "Blazing fast Internal NVMe M.2 Solid State Drive with up to 7000MB/s Read/Write speeds.",
			Price:          149.99,
			ImageURL:       "https://framerusercontent.com/images/Eg8u27Mfu42nThZj8svky8rirGg.jpg",
			Category:       models.CategoryBlackFriday,
			Specifications: "Interface:PCIe Gen4 x4;Capacity:2TB;Read Speed:7450MB/s;Write Speed:6900MB/s;Form Factor:M.2 2280",
		},
		{
			Name:           "OmniHub 10-in-1 Dock",
			Description:    "Ultimate USB-C docking station with 4K HDMI, Gigabit Ethernet, and 100W Power Delivery.",
			Price:          75.00,
			ImageURL:       "https://images.unsplash.com/photo-1591488320449-011701bb6704?w=800&q=80",
			Category:       models.CategoryNewArrivals,
			Specifications: "Ports:3x USB 3.0, 1x HDMI, 1x RJ45, 1x SD, 1x MicroSD, 1x USB-C PD, 1x 3.5mm;HDMI:4K@60Hz;Power:100W PD;Material:Aluminum",
		},
		{
			Name:           "ZenCapture 4K Webcam",
			Description:    "Professional grade 4K resolution webcam with auto-focus and dual noise-canceling microphones.",
			Price:          99.00,
			ImageURL:       "https://images.unsplash.com/photo-1587829741301-dc798b83dadc?w=800&q=80",
			Category:       models.CategoryNewArrivals,
			Specifications: "Resolution:4K Ultra HD;Frame Rate:30fps/60fps;Field of View:90°;Microphone:Dual Stereo;Privacy:Built-in Shutter",
		},
		{
			Name:           "Lumina RGB Desk Lamp",
			Description:    "Smart LED desk lamp with adjustable color temperature, brightness, and built-in wireless charger.",
			Price:          42.50,
			ImageURL:       "https://images.unsplash.com/photo-1534073828943-f801091bb18c?w=800&q=80",
			Category:       models.CategoryNewArrivals,
			Specifications: "Modes:5 Color Temps;Brightness:10 Levels;Wireless Charge:10W Qi;USB Port:5V/2A;Timer:45 Mins",
		},
		{
			Name:           "AeroPod Pro Earbuds",
			Description:    "True wireless earbuds with Active Noise Cancellation and spatial audio experience.",
			Price:          129.99,
			ImageURL:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800&q=80",
			Category:       models.CategoryHotDeals,
			Specifications: "Drivers:10mm Dynamic;ANC:Up to 35dB;Battery:6H (Earbuds) + 24H (Case);Latency:60ms;Bluetooth:5.2",
		},
		{
			Name:           "Nimbus Wireless Mouse",
			Description:    "Ergonomic vertical wireless mouse designed to reduce wrist strain during long work hours.",
			Price:          35.00,
			ImageURL:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=800&q=80",
			Category:       models.CategoryDiscounts,
			Specifications: "DPI:800/1200/1600;Battery:Rechargeable 500mAh;Buttons:6 Keys;Connectivity:2.4GHz + BT 5.0;Weight:110g",
		},
	}

	return db.Create(&seed).Error
}
