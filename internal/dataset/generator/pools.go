package generator

import "github.com/traceright/dataset-service/internal/dataset/domain"

// Word pools for plausible synthetic records. Values are picked uniformly
// at random; ids stay unique through sequence-numbered formatters.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Emily",
	"Anthony", "Margaret", "Mark", "Sandra", "Steven", "Ashley", "Andrew", "Hannah",
	"Kevin", "Carol", "Brian", "Amanda", "George", "Melissa", "Eric", "Laura",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
	"Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Clark",
	"Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright", "Scott",
	"Torres", "Nguyen", "Hill", "Green", "Adams", "Nelson", "Baker", "Rivera", "Kim",
}

var companyWords = []string{
	"Global", "Pacific", "Summit", "Atlas", "Nordic", "Prime", "Vertex", "Cascade",
	"Meridian", "Pioneer", "Harvest", "Sterling", "Coastal", "Apex", "Horizon",
}

var companySuffixes = []string{
	"Supplies", "Trading", "Industries", "Logistics", "Materials", "Holdings",
	"Foods", "Distribution", "Partners", "Group",
}

var materialNames = []string{
	"Wheat Flour", "Cane Sugar", "Sea Salt", "Olive Oil", "Cocoa Powder",
	"Whole Milk Powder", "Vanilla Extract", "Corn Starch", "Soy Lecithin",
	"Citric Acid", "Baking Soda", "Honey", "Almond Paste", "Rice Flour",
	"Palm Oil", "Yeast", "Pectin", "Malt Extract", "Whey Protein", "Oat Bran",
}

var materialCategories = []string{
	"grains", "sweeteners", "oils", "dairy", "additives", "flavorings", "proteins",
}

var unitsOfMeasure = []string{"kg", "g", "l", "ml", "unit"}

var productAdjectives = []string{
	"Classic", "Premium", "Organic", "Artisan", "Golden", "Rustic", "Signature", "Wholesome",
}

var productNouns = []string{
	"Granola Bar", "Shortbread", "Energy Bite", "Crispbread", "Trail Mix",
	"Oat Cookie", "Protein Bar", "Fruit Blend",
}

var certifications = []string{
	"ISO 9001", "ISO 22000", "HACCP", "Organic", "Fair Trade", "Kosher", "Halal", "BRC",
}

var carriers = []string{
	"UPS", "FedEx", "USPS", "DHL", "Maersk Line", "DB Schenker", "Kuehne+Nagel",
}

var responsibleParties = []string{
	"Warehouse Ops", "QA Inspector", "Logistics Desk", "Customs Broker",
	"Carrier Driver", "Plant Supervisor", "Receiving Clerk",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "tempor", "incididunt", "labore", "dolore", "magna", "aliqua", "enim",
	"minim", "veniam", "quis", "nostrud", "exercitation", "ullamco", "laboris",
	"nisi", "aliquip", "commodo", "consequat", "duis", "aute", "irure",
}

var cities = []domain.GeoPoint{
	{Name: "Rotterdam", Latitude: 51.9244, Longitude: 4.4777},
	{Name: "Hamburg", Latitude: 53.5511, Longitude: 9.9937},
	{Name: "Antwerp", Latitude: 51.2194, Longitude: 4.4025},
	{Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198},
	{Name: "Shanghai", Latitude: 31.2304, Longitude: 121.4737},
	{Name: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437},
	{Name: "New York", Latitude: 40.7128, Longitude: -74.0060},
	{Name: "Santos", Latitude: -23.9608, Longitude: -46.3336},
	{Name: "Valencia", Latitude: 39.4699, Longitude: -0.3763},
	{Name: "Busan", Latitude: 35.1796, Longitude: 129.0756},
	{Name: "Dubai", Latitude: 25.2048, Longitude: 55.2708},
	{Name: "Felixstowe", Latitude: 51.9617, Longitude: 1.3513},
}

var countries = []string{
	"Netherlands", "Germany", "Belgium", "Singapore", "China", "United States",
	"Brazil", "Spain", "South Korea", "United Arab Emirates",
}
