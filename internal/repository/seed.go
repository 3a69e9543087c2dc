package repository

import "sathorn/internal/model"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// SeedProperties returns the fixed catalogue loaded at startup. Order matters:
// ids are assigned sequentially, so Empire Tower is always id 1.
func SeedProperties() []model.Property {
	return []model.Property{
		// Offices
		{
			Name: "Empire Tower", Type: model.PropertyTypeOffice,
			Lat: 13.7240, Lng: 100.5347, Area: 5000, PricePerSqm: 350000,
			Description: "Premium Grade A office tower in the heart of Sathorn business district. Features modern amenities, excellent connectivity to BTS system, and panoramic city views.",
			Address:     "1 Empire Tower, South Sathorn Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Chong Nonsi"), BTSDistance: intPtr(200), YearBuilt: intPtr(2014), Floors: intPtr(47),
		},
		{
			Name: "Sathorn Square", Type: model.PropertyTypeOffice,
			Lat: 13.7219, Lng: 100.5339, Area: 3200, PricePerSqm: 320000,
			Description: "Modern business complex with state-of-the-art facilities and excellent transport links.",
			Address:     "98 Sathorn Square, North Sathorn Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Sala Daeng"), BTSDistance: intPtr(300), YearBuilt: intPtr(2016), Floors: intPtr(35),
		},
		{
			Name: "Ocean Tower", Type: model.PropertyTypeOffice,
			Lat: 13.7201, Lng: 100.5356, Area: 4100, PricePerSqm: 385000,
			Description: "Luxury office space with premium finishes and world-class amenities.",
			Address:     "75 Ocean Tower, South Sathorn Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Surasak"), BTSDistance: intPtr(150), YearBuilt: intPtr(2018), Floors: intPtr(42),
		},
		{
			Name: "M.R. Kukrit Pramoj Heritage Home", Type: model.PropertyTypeOffice,
			Lat: 13.7180, Lng: 100.5301, Area: 2800, PricePerSqm: 295000,
			Description: "Heritage office building with traditional Thai architecture and modern facilities.",
			Address:     "19 Soi Phra Pinit, South Sathorn Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Chong Nonsi"), BTSDistance: intPtr(400), YearBuilt: intPtr(1995), Floors: intPtr(25),
		},
		{
			Name: "Silom Complex", Type: model.PropertyTypeOffice,
			Lat: 13.7250, Lng: 100.5370, Area: 6500, PricePerSqm: 410000,
			Description: "Large commercial complex with integrated retail and office spaces.",
			Address:     "191 Silom Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Sala Daeng"), BTSDistance: intPtr(100), YearBuilt: intPtr(2020), Floors: intPtr(55),
		},

		// Residential
		{
			Name: "The Met Condo", Type: model.PropertyTypeResidential,
			Lat: 13.7195, Lng: 100.5342, Area: 200, PricePerSqm: 300000,
			Description: "Luxury condominium with river views and premium amenities including infinity pool and fitness center.",
			Address:     "123 The Met, South Sathorn Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Chong Nonsi"), BTSDistance: intPtr(250), YearBuilt: intPtr(2017), Floors: intPtr(40),
		},
		{
			Name: "Sathorn Gardens", Type: model.PropertyTypeResidential,
			Lat: 13.7208, Lng: 100.5315, Area: 180, PricePerSqm: 275000,
			Description: "Garden view apartments with lush landscaping and family-friendly amenities.",
			Address:     "45 Sathorn Gardens, North Sathorn Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Sala Daeng"), BTSDistance: intPtr(350), YearBuilt: intPtr(2015), Floors: intPtr(32),
		},
		{
			Name: "The River Condo", Type: model.PropertyTypeResidential,
			Lat: 13.7175, Lng: 100.5380, Area: 350, PricePerSqm: 420000,
			Description: "Riverside luxury living with private balconies overlooking the Chao Phraya River.",
			Address:     "88 River View Tower, Charoen Rat Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Saphan Taksin"), BTSDistance: intPtr(180), YearBuilt: intPtr(2019), Floors: intPtr(50),
		},
		{
			Name: "Baan Sathorn", Type: model.PropertyTypeResidential,
			Lat: 13.7230, Lng: 100.5290, Area: 150, PricePerSqm: 260000,
			Description: "Compact urban living with modern design and convenient location.",
			Address:     "67 Baan Sathorn, Pan Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Chong Nonsi"), BTSDistance: intPtr(450), YearBuilt: intPtr(2014), Floors: intPtr(28),
		},
		{
			Name: "Noble House", Type: model.PropertyTypeResidential,
			Lat: 13.7265, Lng: 100.5325, Area: 280, PricePerSqm: 380000,
			Description: "Premium residential tower with concierge services and rooftop facilities.",
			Address:     "156 Noble House, Silom Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Sala Daeng"), BTSDistance: intPtr(120), YearBuilt: intPtr(2021), Floors: intPtr(45),
		},

		// Restaurants
		{
			Name: "The House on Sathorn", Type: model.PropertyTypeRestaurant,
			Lat: 13.7225, Lng: 100.5325, Area: 320, PricePerSqm: 420000,
			Description: "Fine dining establishment in a beautifully restored heritage building with contemporary cuisine.",
			Address:     "106 The House on Sathorn, North Sathorn Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Sala Daeng"), BTSDistance: intPtr(280), YearBuilt: intPtr(2008), Floors: intPtr(2),
		},
		{
			Name: "Blue Elephant", Type: model.PropertyTypeRestaurant,
			Lat: 13.7189, Lng: 100.5361, Area: 280, PricePerSqm: 395000,
			Description: "Royal Thai cuisine in an elegant colonial mansion setting.",
			Address:     "233 Blue Elephant, South Sathorn Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Surasak"), BTSDistance: intPtr(200), YearBuilt: intPtr(1990), Floors: intPtr(3),
		},
		{
			Name: "Eat Me Restaurant", Type: model.PropertyTypeRestaurant,
			Lat: 13.7155, Lng: 100.5341, Area: 180, PricePerSqm: 450000,
			Description: "Contemporary dining with innovative fusion cuisine and artistic presentation.",
			Address:     "1/6 Eat Me, Soi Pipat 2, Convent Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Sala Daeng"), BTSDistance: intPtr(400), YearBuilt: intPtr(2012), Floors: intPtr(2),
		},
		{
			Name: "Le Du", Type: model.PropertyTypeRestaurant,
			Lat: 13.7203, Lng: 100.5333, Area: 160, PricePerSqm: 475000,
			Description: "Michelin starred restaurant featuring modern Thai cuisine with seasonal ingredients.",
			Address:     "399/3 Le Du, Silom 7, Silom Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Sala Daeng"), BTSDistance: intPtr(250), YearBuilt: intPtr(2014), Floors: intPtr(1),
		},
		{
			Name: "Gaggan Anand", Type: model.PropertyTypeRestaurant,
			Lat: 13.7241, Lng: 100.5351, Area: 220, PricePerSqm: 520000,
			Description: "Progressive Indian cuisine by renowned chef Gaggan Anand with innovative molecular gastronomy.",
			Address:     "68/1 Gaggan, Soi Langsuan, Ploenchit Road, Sathorn, Bangkok",
			NearestBTS:  strPtr("Chit Lom"), BTSDistance: intPtr(300), YearBuilt: intPtr(2017), Floors: intPtr(2),
		},

		// Silom
		{
			Name: "Thaniya Plaza", Type: model.PropertyTypeOffice,
			Lat: 13.7294, Lng: 100.5330, Area: 3800, PricePerSqm: 340000,
			Description: "Mid-rise office and retail podium on Silom Road with direct skywalk access to the BTS.",
			Address:     "52 Thaniya Plaza, Silom Road, Bang Rak, Bangkok",
			NearestBTS:  strPtr("Sala Daeng"), BTSDistance: intPtr(80), YearBuilt: intPtr(1998), Floors: intPtr(24),
		},
		{
			Name: "Ashton Silom", Type: model.PropertyTypeResidential,
			Lat: 13.7262, Lng: 100.5262, Area: 240, PricePerSqm: 360000,
			Description: "High-rise condominium with sky lounge and co-working floors near Chong Nonsi.",
			Address:     "Ashton Silom, Silom Road, Bang Rak, Bangkok",
			NearestBTS:  strPtr("Chong Nonsi"), BTSDistance: intPtr(150), YearBuilt: intPtr(2019), Floors: intPtr(49),
		},
		{
			Name: "Silom Village Restaurant", Type: model.PropertyTypeRestaurant,
			Lat: 13.7262, Lng: 100.5290, Area: 400, PricePerSqm: 320000,
			Description: "Open-air Thai restaurant inside the Silom Village trade centre with nightly cultural shows.",
			Address:     "286 Silom Village, Silom Road, Bang Rak, Bangkok",
			NearestBTS:  strPtr("Surasak"), BTSDistance: intPtr(600), YearBuilt: intPtr(1985), Floors: intPtr(1),
		},
	}
}
