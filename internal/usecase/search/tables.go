package search

// misspellings maps common lower-case misspellings to their correction.
// Read-only after package initialization.
var misspellings = map[string]string{
	"progaming":    "programming",
	"programing":   "programming",
	"programmng":   "programming",
	"algoritm":     "algorithm",
	"algorithem":   "algorithm",
	"algorthm":     "algorithm",
	"databse":      "database",
	"datbase":      "database",
	"pyton":        "python",
	"pythn":        "python",
	"javscript":    "javascript",
	"javasript":    "javascript",
	"artifical":    "artificial",
	"artficial":    "artificial",
	"inteligence":  "intelligence",
	"intelligance": "intelligence",
	"learnig":      "learning",
	"lerning":      "learning",
	"machin":       "machine",
	"sofware":      "software",
	"softwre":      "software",
	"enginering":   "engineering",
	"engeneering":  "engineering",
	"devlopment":   "development",
	"developement": "development",
	"netwrok":      "network",
	"securty":      "security",
	"computr":      "computer",
	"scince":       "science",
	"sceince":      "science",
	"histroy":      "history",
	"mathmatics":   "mathematics",
	"mathematcs":   "mathematics",
	"phsyics":      "physics",
	"chemsitry":    "chemistry",
	"biolgy":       "biology",
	"pyschology":   "psychology",
	"philosphy":    "philosophy",
	"economcs":     "economics",
	"managment":    "management",
	"statistcs":    "statistics",
	"literatur":    "literature",
}

// synonyms maps a lower-case abbreviation or short term to related phrases.
// Slice order is the expansion order. Read-only after package initialization.
var synonyms = map[string][]string{
	"ai":          {"artificial intelligence", "machine learning"},
	"ml":          {"machine learning", "statistical learning"},
	"js":          {"javascript", "ecmascript"},
	"db":          {"database", "data storage"},
	"os":          {"operating system", "operating systems"},
	"ui":          {"user interface", "interface design"},
	"ux":          {"user experience", "usability"},
	"cs":          {"computer science", "computing"},
	"math":        {"mathematics", "maths"},
	"programming": {"coding", "software development"},
	"history":     {"historical", "past events"},
	"fiction":     {"novel", "stories"},
	"bio":         {"biology", "biography"},
	"econ":        {"economics", "economy"},
	"psych":       {"psychology", "mental health"},
}
