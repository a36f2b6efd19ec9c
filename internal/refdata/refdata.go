// Package refdata holds the static reference payloads served to
// registration forms. No business logic lives here.
package refdata

var FarmTypes = map[string]string{
	"crop":      "Crop Farming",
	"livestock": "Livestock",
	"mixed":     "Mixed Farming",
	"organic":   "Organic Farming",
	"other":     "Other",
}

var BusinessTypes = map[string]string{
	"individual":  "Individual",
	"company":     "Company",
	"partnership": "Partnership",
}

var CommonCropTypes = []string{
	"rice", "wheat", "sugarcane", "cotton", "groundnut",
	"coconut", "banana", "mango", "tomato", "onion",
	"potato", "brinjal", "okra", "chilli", "turmeric",
}

var CommonLivestockTypes = []string{
	"cattle", "buffalo", "goat", "sheep", "chicken",
	"duck", "fish", "pig", "horse",
}

var CommonEquipmentTypes = []string{
	"tractor", "harvester", "plough", "cultivator",
	"seed_drill", "sprayer", "thresher", "rotavator",
	"disc_harrow", "power_tiller",
}

var TamilNaduDistricts = []string{
	"Ariyalur", "Chengalpattu", "Chennai", "Coimbatore",
	"Cuddalore", "Dharmapuri", "Dindigul", "Erode",
	"Kallakurichi", "Kanchipuram", "Kanyakumari", "Karur",
	"Krishnagiri", "Madurai", "Mayiladuthurai", "Nagapattinam",
	"Namakkal", "Nilgiris", "Perambalur", "Pudukkottai",
	"Ramanathapuram", "Ranipet", "Salem", "Sivaganga",
	"Tenkasi", "Thanjavur", "Theni", "Thoothukudi",
	"Tiruchirappalli", "Tirunelveli", "Tirupathur",
	"Tiruppur", "Tiruvallur", "Tiruvannamalai", "Tiruvarur",
	"Vellore", "Viluppuram", "Virudhunagar",
}
