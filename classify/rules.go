package classify

import "fincoach"

// rule pairs a category with the lower-case substrings that select it.
// The keyword sets are data, not logic: several keywords are deliberately
// ambiguous across categories ("target", "service", "plan", "food") and
// the evaluation order below is the tie-break. Reordering rules changes
// classification results.
type rule struct {
	category fincoach.Category
	keywords []string
}

// rules is evaluated top to bottom; the first rule with any substring
// match wins. Inputs falling through every rule classify as Other.
var rules = []rule{
	{fincoach.Coffee, []string{
		"starbucks", "coffee", "dunkin", "tim hortons",
		"peets", "caribou", "costa", "cafe",
		"espresso", "latte", "cappuccino", "brew",
	}},
	{fincoach.FoodDelivery, []string{
		"uber eats", "doordash", "grubhub", "postmates",
		"delivery", "caviar", "seamless", "chownow",
		"foodpanda", "just eat", "takeaway",
	}},
	{fincoach.Groceries, []string{
		"costco", "walmart", "target", "safeway", "kroger",
		"whole foods", "trader joe", "aldi", "lidl",
		"wegmans", "publix", "giant", "stop & shop",
		"food lion", "harris teeter", "heb", "meijer",
		"supermarket", "grocery", "market",
	}},
	{fincoach.Gas, []string{
		"shell", "exxon", "chevron", "bp", "mobil",
		"sunoco", "marathon", "speedway", "citgo",
		"valero", "phillips", "conoco", "texaco",
		"gas", "fuel", "petrol", "station",
		"pump", "gasoline", "filling", "service station",
	}},
	{fincoach.Transportation, []string{
		"ezpass", "toll", "uber", "lyft", "taxi",
		"metro", "transit", "bus", "train", "subway",
		"parking", "garage", "lot", "ride", "car rental",
		"hertz", "avis", "enterprise", "zipcar",
	}},
	{fincoach.Utilities, []string{
		"spectrum", "comcast", "verizon", "at&t", "t-mobile",
		"sprint", "electric", "water", "internet", "phone",
		"cable", "wifi", "broadband", "utility", "power",
		"gas company", "electric company", "water company", "sewer",
	}},
	{fincoach.Electronics, []string{
		"apple", "best buy", "amazon", "electronics", "computer",
		"samsung", "microsoft", "dell", "hp", "lenovo",
		"sony", "lg", "nintendo", "playstation", "xbox",
		"phone", "laptop", "tablet", "tv", "monitor",
	}},
	{fincoach.Clothing, []string{
		"nike", "adidas", "zara", "h&m", "clothing", "fashion",
		"uniqlo", "gap", "old navy", "banana republic", "j crew",
		"macy", "nordstrom", "target", "walmart", "kohl",
		"shirt", "pants", "shoes", "dress", "jacket",
		"apparel", "outfit", "wardrobe",
	}},
	{fincoach.Entertainment, []string{
		"netflix", "spotify", "hulu", "disney", "movie", "theater", "entertainment",
		"amazon prime", "hbo", "youtube", "twitch", "steam",
		"cinema", "concert", "show", "game", "arcade",
		"bowling", "pool", "karaoke", "club", "bar",
		"pub", "casino", "gambling", "lottery",
		"top golf", "amc",
	}},
	{fincoach.Dining, []string{
		"restaurant", "dining", "food", "cafe", "bistro",
		"mcdonalds", "burger king", "wendys", "kfc", "subway",
		"pizza hut", "dominos", "chipotle", "taco bell", "panera",
		"olive garden", "applebees", "chilis", "outback", "red lobster",
		"diner", "grill", "kitchen", "eatery",
		"tavern", "steakhouse", "seafood", "italian", "chinese",
		"mexican", "japanese", "thai", "indian", "mediterranean",
		"pizzeria", "chicken", "pizza", "wing", "buffalo",
		"chick-fil-a", "chick fil a", "chickfila",
	}},
	{fincoach.Fees, []string{
		"interest", "fee", "charge", "annual",
		"late", "overdraft", "penalty", "service",
		"maintenance", "processing", "transaction", "convenience",
		"atm", "wire", "transfer", "foreign",
		"cash advance", "balance transfer", "minimum payment",
	}},
	{fincoach.Subscription, []string{
		"subscription", "monthly", "plan", "service",
		"adobe", "microsoft 365", "office 365", "google",
		"dropbox", "icloud", "aws", "azure",
		"slack", "zoom", "canva", "figma",
		"github", "linkedin", "premium", "pro",
		"plus", "membership", "recurring", "auto-renew",
	}},
	{fincoach.Shopping, []string{
		"shopping", "store", "shop", "retail",
		"mall", "outlet", "boutique", "department",
		"home depot", "lowes", "ikea", "bed bath",
		"container store", "michaels", "joann", "hobby lobby",
		"petco", "petsmart", "staples", "office depot",
		"dicks", "sports authority", "academy", "bass pro",
		"sam's club", "sams club", "samsclub",
	}},
}
