package classify

// Supplier bucket names used by the default table.
const (
	CategorySayur     = "Supplier Sayur-mayur"
	CategoryAyam      = "Supplier Daging Ayam"
	CategorySapi      = "Supplier Daging Sapi"
	CategoryKambing   = "Supplier Daging Kambing"
	CategoryBabi      = "Supplier Daging Babi"
	CategoryOlahan    = "Supplier Daging Olahan"
	CategoryIkan      = "Supplier Ikan"
	CategoryBuah      = "Supplier Buah"
	CategorySusu      = "Supplier Susu"
	CategoryBeras     = "Supplier Beras"
	CategoryAirMinum  = "Supplier Air Minum Kemasan"
	CategoryBumbu     = "Supplier Bumbu"
)

var defaultTable = map[string][]string{
	CategorySayur: {
		"Bayam", "Kangkung", "Sawi hijau", "Sawi putih", "Pakcoy", "Selada", "Daun singkong",
		"Daun pepaya", "Daun katuk", "Daun kelor", "Daun bawang", "Seledri", "Kubis", "Kol",
		"Kailan", "Genjer", "Kenikir", "Daun kemangi", "Daun melinjo", "Tomat", "Mentimun",
		"Terong ungu", "Terong hijau", "Cabai merah", "Cabai hijau", "Cabai rawit", "Paprika",
		"Labu siam", "Pare", "Oyong", "Gambas", "Okra", "Kacang panjang", "Buncis", "Kapri",
		"Petai", "Jengkol", "Wortel", "Lobak", "Kentang", "Talas", "Bengkuang", "Bit", "Garut",
		"Kembang kol", "Brokoli", "Bunga pepaya", "Bunga turi", "Jantung pisang", "Jagung manis",
		"Kacang tanah", "Kacang hijau", "Kedelai", "Kacang merah", "Kacang tolo", "Kacang polong",
		"Asparagus", "Rebung", "Batang seledri", "Batang talas", "Jamur tiram", "Jamur kancing",
		"Jamur kuping", "Jamur shiitake", "Jamur enoki", "Jamur merang",
	},
	CategoryAyam: {
		"Ayam negeri", "Broiler", "Ayam kampung", "Ayam pejantan", "Bebek", "Itik", "Entok",
		"Kalkun", "Puyuh", "Hati ayam", "Ampela", "Usus", "Ayam potong", "Ayam",
	},
	CategorySapi: {
		"Daging sapi paha", "Daging sapi has luar", "Daging sapi has dalam",
		"Daging sapi sandung lamur", "Brisket", "Daging sapi sengkel", "Daging sapi iga",
		"Daging sapi tetelan", "Daging sapi giling", "Hati sapi", "Babad", "Paruh", "Limpa",
		"Ginjal", "Otak sapi", "Daging sapi",
	},
	CategoryKambing: {
		"Daging kambing", "Daging domba", "Iga kambing", "Hati kambing", "Otak kambing",
	},
	CategoryBabi: {
		"Daging babi segar", "Babi giling", "Iga babi", "Bacon", "Ham", "Daging babi",
	},
	CategoryOlahan: {
		"Sosis", "Nugget", "Bakso", "Kornet", "Dendeng", "Abon", "Smoked beef",
	},
	CategoryIkan: {
		"Ikan ayam-ayam", "Ikan tongkol", "Ikan tuna", "Ikan bandeng", "Ikan nila",
		"Ikan bawal laut", "Ikan bawal tawar", "Ikan lele", "Ikan patin", "Udang",
		"Cumi-cumi", "Kepiting", "Rajungan",
	},
	CategoryBuah: {
		"Apel", "Jeruk", "Pisang", "Anggur", "Mangga", "Semangka", "Melon", "Nanas",
		"Pepaya", "Salak", "Rambutan", "Durian", "Jambu", "Alpukat", "Pir", "Strawberry",
		"Buah Naga", "Kelengkeng", "Manggis", "Duku",
	},
	CategorySusu: {
		"Susu segar", "Susu UHT", "Susu UHT kotak", "Susu kental manis", "Susu bubuk", "Keju",
		"Cheddar", "Mozzarella", "Parmesan", "Yogurt", "Mentega", "Butter", "Margarin",
		"Cream", "Ice Cream",
	},
	CategoryBeras: {
		"Beras", "Beras Putih", "Beras IR", "Beras medium", "Beras premium", "Beras pandan wangi",
		"Beras rojolele", "Beras mentik wangi", "Beras cisadane", "Beras long grain",
		"Beras short grain", "Beras Merah", "Beras merah lokal", "Beras merah organik",
		"Beras merah pecah kulit", "Beras Hitam", "Beras hitam lokal", "Beras hitam organic",
		"Beras Basmati", "Ketan", "Ketan putih", "Ketan hitam",
	},
	CategoryAirMinum: {
		"Air mineral gelas", "Air mineral cup", "Air mineral botol",
		"Air mineral botol 600 ml", "Air mineral botol 1,5 liter",
		"Air mineral galon 19 liter", "Air Galon", "Air Mineral",
	},
	CategoryBumbu: {
		"Garam", "Gula", "Kaldu bubuk", "Merica", "Ketumbar", "Minyak goreng", "Bawang merah",
		"Bawang putih", "Tepung terigu", "Tepung maizena", "Air",
	},
}

// DefaultRules flattens the built-in supplier table into a rule list.
func DefaultRules() []Rule {
	var rules []Rule
	for category, keywords := range defaultTable {
		for _, kw := range keywords {
			rules = append(rules, Rule{Keyword: kw, Category: category})
		}
	}
	return rules
}
