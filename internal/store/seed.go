package store

import "github.com/example/maya-portal/internal/models"

// Demo catalog rows, shared by the in-memory store and the database
// seeder.

// SeedHotels returns the demo hotel rows. All are platform-owned.
func SeedHotels() []models.Hotel {
	return []models.Hotel{
		{Name: "Hotel Balam Kú", Location: "Tulum, Quintana Roo", Price: 2500, Image: "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=2070&auto=format&fit=crop"},
		{Name: "Hacienda Uxmal", Location: "Mérida, Yucatán", Price: 3200, Image: "https://images.unsplash.com/photo-1582719508461-905c673771fd?q=80&w=1925&auto=format&fit=crop"},
		{Name: "Resort Kin Ha", Location: "Palenque, Chiapas", Price: 1900, Image: "https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?q=80&w=2070&auto=format&fit=crop"},
	}
}

// SeedRestaurants returns the demo restaurant rows.
func SeedRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{Name: "Corazón de Jade", Specialty: "Cocina de Autor", Location: "Campeche", Image: "https://images.unsplash.com/photo-1552566626-52f8b828add9?q=80&w=2070&auto=format&fit=crop"},
		{Name: "La Ceiba", Specialty: "Mariscos Frescos", Location: "Chetumal", Image: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?q=80&w=2070&auto=format&fit=crop"},
		{Name: "El Fogón del Jaguar", Specialty: "Carnes y Tradición", Location: "Valladolid", Image: "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?q=80&w=2070&auto=format&fit=crop"},
	}
}

// SeedExperiences returns the demo experience rows.
func SeedExperiences() []models.Experience {
	return []models.Experience{
		{Type: "tour", Name: "Tour a Chichén Itzá", Price: 1200, Image: "https://images.unsplash.com/photo-1528181304800-259b08848526?q=80&w=2070&auto=format&fit=crop"},
		{Type: "caballos", Name: "Paseo a Caballo", Price: 850, Image: "https://images.unsplash.com/photo-1599059813005-3603a5603703?q=80&w=1974&auto=format&fit=crop"},
		{Type: "cenote", Name: "Nado en Cenote Sagrado", Price: 450, Image: "https://images.unsplash.com/photo-1627907222543-4111d6946196?q=80&w=1965&auto=format&fit=crop"},
	}
}

// SeedProducts returns the demo artisan product rows.
func SeedProducts() []models.Product {
	return []models.Product{
		{Name: "Huipil Ceremonial", Artisan: "Elena Poot", Price: 1800, Category: "textil", Image: "https://images.unsplash.com/photo-1620921207299-b37993505b12?q=80&w=1964&auto=format&fit=crop", Description: "Tejido a mano con técnicas ancestrales, este huipil representa la cosmovisión maya en cada uno de sus hilos."},
		{Name: "Vasija de Sac-bé", Artisan: "Mateo Cruz", Price: 950, Category: "ceramica", Image: "https://images.unsplash.com/photo-1578899223131-a7isea110323?q=80&w=1887&auto=format&fit=crop", Description: "Cerámica de alta temperatura pintada a mano con pigmentos naturales, ideal para decoración."},
		{Name: "Aretes de Filigrana", Artisan: "Isabel Chi", Price: 1200, Category: "joyeria", Image: "https://images.unsplash.com/photo-1611652032935-a6ce59b4c03d?q=80&w=1887&auto=format&fit=crop", Description: "Elegantes aretes de plata trabajados con la delicada técnica de filigrana."},
	}
}
