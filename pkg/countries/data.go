// Copyright 2022 the Exposure Notifications Verification Server authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package countries

// nanpPatterns are shared by the North American Numbering Plan members that
// publish service codes.
var nanpPatterns = []Pattern{
	{"800", TollFree},
	{"833", TollFree},
	{"844", TollFree},
	{"855", TollFree},
	{"866", TollFree},
	{"877", TollFree},
	{"888", TollFree},
	{"900", PremiumRate},
	{"976", PremiumRate},
	{"", FixedLine},
}

// records is the compiled-in calling code table. Within a shared calling code,
// the record marked Default is returned for numbers that cannot be attributed
// to a single country.
var records = []Country{
	{Name: "United States", Code: "US", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1", Default: true, Patterns: nanpPatterns},
	{Name: "Canada", Code: "CA", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1", Patterns: nanpPatterns},
	{Name: "Antigua and Barbuda", Code: "AG", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Anguilla", Code: "AI", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "American Samoa", Code: "AS", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Barbados", Code: "BB", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Bermuda", Code: "BM", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Bahamas", Code: "BS", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Dominica", Code: "DM", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Dominican Republic", Code: "DO", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Grenada", Code: "GD", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Guam", Code: "GU", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Jamaica", Code: "JM", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Saint Kitts and Nevis", Code: "KN", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Cayman Islands", Code: "KY", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Saint Lucia", Code: "LC", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Northern Mariana Islands", Code: "MP", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Montserrat", Code: "MS", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Puerto Rico", Code: "PR", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Sint Maarten", Code: "SX", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Turks and Caicos Islands", Code: "TC", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Trinidad and Tobago", Code: "TT", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "Saint Vincent and the Grenadines", Code: "VC", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "British Virgin Islands", Code: "VG", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{Name: "U.S. Virgin Islands", Code: "VI", CallingCode: 1, Lengths: []int{10}, TrunkPrefix: "1"},
	{
		Name: "Russia", Code: "RU", CallingCode: 7, Lengths: []int{10}, TrunkPrefix: "8", Default: true,
		Patterns: []Pattern{
			{"9", Mobile},
			{"800", TollFree},
			{"80", PremiumRate},
			{"3", FixedLine},
			{"4", FixedLine},
			{"8", FixedLine},
		},
	},
	{Name: "Kazakhstan", Code: "KZ", CallingCode: 7, Lengths: []int{10}, TrunkPrefix: "8"},
	{
		Name: "Egypt", Code: "EG", CallingCode: 20, Lengths: []int{8, 9, 10}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"1", Mobile},
			{"800", TollFree},
			{"900", PremiumRate},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
			{"6", FixedLine},
			{"8", FixedLine},
			{"9", FixedLine},
		},
	},
	{
		Name: "South Africa", Code: "ZA", CallingCode: 27, Lengths: []int{9}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"6", Mobile},
			{"7", Mobile},
			{"8", Mobile},
			{"80", TollFree},
			{"86", SharedCost},
			{"87", Voip},
			{"1", FixedLine},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
		},
	},
	{Name: "Greece", Code: "GR", CallingCode: 30, Lengths: []int{10}},
	{
		Name: "Netherlands", Code: "NL", CallingCode: 31, Lengths: []int{9}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"6", Mobile},
			{"800", TollFree},
			{"90", PremiumRate},
			{"85", Voip},
			{"1", FixedLine},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
			{"7", FixedLine},
		},
	},
	{
		Name: "Belgium", Code: "BE", CallingCode: 32, Lengths: []int{8, 9}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"4", Mobile},
			{"800", TollFree},
			{"90", PremiumRate},
			{"78", SharedCost},
			{"1", FixedLine},
			{"2", FixedLine},
			{"3", FixedLine},
			{"5", FixedLine},
			{"6", FixedLine},
			{"7", FixedLine},
			{"8", FixedLine},
			{"9", FixedLine},
		},
	},
	{
		Name: "France", Code: "FR", CallingCode: 33, Lengths: []int{9}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"6", Mobile},
			{"7", Mobile},
			{"80", TollFree},
			{"81", SharedCost},
			{"82", SharedCost},
			{"89", PremiumRate},
			{"9", Voip},
			{"1", FixedLine},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
		},
	},
	{
		Name: "Spain", Code: "ES", CallingCode: 34, Lengths: []int{9},
		Patterns: []Pattern{
			{"6", Mobile},
			{"7", Mobile},
			{"800", TollFree},
			{"900", TollFree},
			{"80", PremiumRate},
			{"90", SharedCost},
			{"9", FixedLine},
			{"8", FixedLine},
		},
	},
	{Name: "Hungary", Code: "HU", CallingCode: 36, Lengths: []int{8, 9}, TrunkPrefix: "06"},
	{
		Name: "Italy", Code: "IT", CallingCode: 39, Lengths: []int{6, 7, 8, 9, 10, 11},
		Patterns: []Pattern{
			{"3", Mobile},
			{"800", TollFree},
			{"803", TollFree},
			{"89", PremiumRate},
			{"84", SharedCost},
			{"0", FixedLine},
		},
	},
	{Name: "Romania", Code: "RO", CallingCode: 40, Lengths: []int{9}, TrunkPrefix: "0"},
	{
		Name: "Switzerland", Code: "CH", CallingCode: 41, Lengths: []int{9}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"74", Pager},
			{"75", Mobile},
			{"76", Mobile},
			{"77", Mobile},
			{"78", Mobile},
			{"79", Mobile},
			{"800", TollFree},
			{"90", PremiumRate},
			{"84", SharedCost},
			{"878", PersonalNumber},
			{"58", Uan},
			{"86", Voicemail},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
			{"6", FixedLine},
			{"8", FixedLine},
			{"9", FixedLine},
		},
	},
	{Name: "Austria", Code: "AT", CallingCode: 43, Lengths: []int{7, 8, 9, 10, 11, 12, 13}, TrunkPrefix: "0"},
	{
		Name: "United Kingdom", Code: "GB", CallingCode: 44, Lengths: []int{9, 10}, TrunkPrefix: "0", Default: true,
		Patterns: []Pattern{
			{"7624", Mobile},
			{"70", PersonalNumber},
			{"76", Pager},
			{"7", Mobile},
			{"800", TollFree},
			{"808", TollFree},
			{"84", SharedCost},
			{"87", SharedCost},
			{"9", PremiumRate},
			{"1", FixedLine},
			{"2", FixedLine},
			{"3", Uan},
			{"55", Voip},
			{"56", Voip},
		},
	},
	{
		Name: "Wales", Code: "GB-CYM", CallingCode: 44, Lengths: []int{9, 10}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"7", Mobile},
			{"800", TollFree},
			{"9", PremiumRate},
			{"1", FixedLine},
			{"2", FixedLine},
		},
	},
	{Name: "Guernsey", Code: "GG", CallingCode: 44, Lengths: []int{10}, TrunkPrefix: "0"},
	{Name: "Isle of Man", Code: "IM", CallingCode: 44, Lengths: []int{10}, TrunkPrefix: "0"},
	{Name: "Jersey", Code: "JE", CallingCode: 44, Lengths: []int{10}, TrunkPrefix: "0"},
	{Name: "Denmark", Code: "DK", CallingCode: 45, Lengths: []int{8}},
	{Name: "Sweden", Code: "SE", CallingCode: 46, Lengths: []int{7, 8, 9, 10}, TrunkPrefix: "0"},
	{Name: "Norway", Code: "NO", CallingCode: 47, Lengths: []int{8}, Default: true},
	{Name: "Svalbard and Jan Mayen", Code: "SJ", CallingCode: 47, Lengths: []int{8}},
	{Name: "Poland", Code: "PL", CallingCode: 48, Lengths: []int{9}},
	{
		Name: "Germany", Code: "DE", CallingCode: 49, Lengths: []int{6, 7, 8, 9, 10, 11}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"15", Mobile},
			{"16", Mobile},
			{"17", Mobile},
			{"800", TollFree},
			{"180", SharedCost},
			{"900", PremiumRate},
			{"700", PersonalNumber},
			{"32", Voip},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
			{"6", FixedLine},
			{"7", FixedLine},
			{"8", FixedLine},
			{"9", FixedLine},
		},
	},
	{Name: "Peru", Code: "PE", CallingCode: 51, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "Mexico", Code: "MX", CallingCode: 52, Lengths: []int{10}},
	{Name: "Cuba", Code: "CU", CallingCode: 53, Lengths: []int{6, 7, 8}, TrunkPrefix: "0"},
	{Name: "Argentina", Code: "AR", CallingCode: 54, Lengths: []int{10, 11}, TrunkPrefix: "0"},
	{
		Name: "Brazil", Code: "BR", CallingCode: 55, Lengths: []int{10, 11}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"800", TollFree},
		},
	},
	{Name: "Chile", Code: "CL", CallingCode: 56, Lengths: []int{9}},
	{Name: "Colombia", Code: "CO", CallingCode: 57, Lengths: []int{8, 10}},
	{Name: "Venezuela", Code: "VE", CallingCode: 58, Lengths: []int{10}, TrunkPrefix: "0"},
	{Name: "Malaysia", Code: "MY", CallingCode: 60, Lengths: []int{8, 9, 10}, TrunkPrefix: "0"},
	{
		Name: "Australia", Code: "AU", CallingCode: 61, Lengths: []int{9}, TrunkPrefix: "0", Default: true,
		Patterns: []Pattern{
			{"4", Mobile},
			{"1800", TollFree},
			{"190", PremiumRate},
			{"13", SharedCost},
			{"550", Voip},
			{"2", FixedLine},
			{"3", FixedLine},
			{"7", FixedLine},
			{"8", FixedLine},
		},
	},
	{Name: "Christmas Island", Code: "CX", CallingCode: 61, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Cocos (Keeling) Islands", Code: "CC", CallingCode: 61, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Indonesia", Code: "ID", CallingCode: 62, Lengths: []int{8, 9, 10, 11, 12}, TrunkPrefix: "0"},
	{Name: "Philippines", Code: "PH", CallingCode: 63, Lengths: []int{8, 9, 10}, TrunkPrefix: "0"},
	{Name: "New Zealand", Code: "NZ", CallingCode: 64, Lengths: []int{8, 9, 10}, TrunkPrefix: "0"},
	{Name: "Singapore", Code: "SG", CallingCode: 65, Lengths: []int{8}},
	{Name: "Thailand", Code: "TH", CallingCode: 66, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{
		Name: "Japan", Code: "JP", CallingCode: 81, Lengths: []int{9, 10}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"70", Mobile},
			{"80", Mobile},
			{"90", Mobile},
			{"120", TollFree},
			{"800", TollFree},
			{"990", PremiumRate},
			{"570", SharedCost},
			{"50", Voip},
			{"20", Pager},
			{"60", Uan},
		},
	},
	{
		Name: "South Korea", Code: "KR", CallingCode: 82, Lengths: []int{8, 9, 10}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"10", Mobile},
			{"80", TollFree},
			{"60", PremiumRate},
			{"70", Voip},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
			{"6", FixedLine},
		},
	},
	{Name: "Vietnam", Code: "VN", CallingCode: 84, Lengths: []int{9, 10}, TrunkPrefix: "0"},
	{
		Name: "China", Code: "CN", CallingCode: 86, Lengths: []int{10, 11}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"13", Mobile},
			{"14", Mobile},
			{"15", Mobile},
			{"16", Mobile},
			{"17", Mobile},
			{"18", Mobile},
			{"19", Mobile},
			{"800", TollFree},
			{"400", SharedCost},
			{"1", FixedLine},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
			{"6", FixedLine},
			{"7", FixedLine},
			{"8", FixedLine},
			{"9", FixedLine},
		},
	},
	{
		Name: "Turkey", Code: "TR", CallingCode: 90, Lengths: []int{10}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"5", Mobile},
			{"800", TollFree},
			{"900", PremiumRate},
			{"444", Uan},
			{"850", Voip},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
		},
	},
	{
		Name: "India", Code: "IN", CallingCode: 91, Lengths: []int{10}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"1800", TollFree},
			{"6", Mobile},
			{"7", Mobile},
			{"8", Mobile},
			{"9", Mobile},
			{"1", FixedLine},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
		},
	},
	{Name: "Pakistan", Code: "PK", CallingCode: 92, Lengths: []int{9, 10}, TrunkPrefix: "0"},
	{Name: "Afghanistan", Code: "AF", CallingCode: 93, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Sri Lanka", Code: "LK", CallingCode: 94, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Myanmar", Code: "MM", CallingCode: 95, Lengths: []int{8, 9, 10}, TrunkPrefix: "0"},
	{Name: "Iran", Code: "IR", CallingCode: 98, Lengths: []int{10}, TrunkPrefix: "0"},
	{Name: "South Sudan", Code: "SS", CallingCode: 211, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Morocco", Code: "MA", CallingCode: 212, Lengths: []int{9}, TrunkPrefix: "0", Default: true},
	{Name: "Western Sahara", Code: "EH", CallingCode: 212, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Algeria", Code: "DZ", CallingCode: 213, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "Tunisia", Code: "TN", CallingCode: 216, Lengths: []int{8}},
	{Name: "Libya", Code: "LY", CallingCode: 218, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Gambia", Code: "GM", CallingCode: 220, Lengths: []int{7}},
	{Name: "Senegal", Code: "SN", CallingCode: 221, Lengths: []int{9}},
	{Name: "Mauritania", Code: "MR", CallingCode: 222, Lengths: []int{8}},
	{Name: "Mali", Code: "ML", CallingCode: 223, Lengths: []int{8}},
	{Name: "Guinea", Code: "GN", CallingCode: 224, Lengths: []int{8, 9}},
	{Name: "Ivory Coast", Code: "CI", CallingCode: 225, Lengths: []int{8, 10}},
	{Name: "Burkina Faso", Code: "BF", CallingCode: 226, Lengths: []int{8}},
	{Name: "Niger", Code: "NE", CallingCode: 227, Lengths: []int{8}},
	{Name: "Togo", Code: "TG", CallingCode: 228, Lengths: []int{8}},
	{Name: "Benin", Code: "BJ", CallingCode: 229, Lengths: []int{8, 10}},
	{Name: "Mauritius", Code: "MU", CallingCode: 230, Lengths: []int{7, 8}},
	{Name: "Liberia", Code: "LR", CallingCode: 231, Lengths: []int{7, 8, 9}, TrunkPrefix: "0"},
	{Name: "Sierra Leone", Code: "SL", CallingCode: 232, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Ghana", Code: "GH", CallingCode: 233, Lengths: []int{9}, TrunkPrefix: "0"},
	{
		Name: "Nigeria", Code: "NG", CallingCode: 234, Lengths: []int{8, 9, 10}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"70", Mobile},
			{"80", Mobile},
			{"81", Mobile},
			{"90", Mobile},
			{"91", Mobile},
			{"800", TollFree},
			{"700", PremiumRate},
			{"1", FixedLine},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
			{"6", FixedLine},
			{"7", FixedLine},
			{"8", FixedLine},
			{"9", FixedLine},
		},
	},
	{Name: "Chad", Code: "TD", CallingCode: 235, Lengths: []int{8}},
	{Name: "Central African Republic", Code: "CF", CallingCode: 236, Lengths: []int{8}},
	{Name: "Cameroon", Code: "CM", CallingCode: 237, Lengths: []int{9}},
	{Name: "Cape Verde", Code: "CV", CallingCode: 238, Lengths: []int{7}},
	{Name: "Sao Tome and Principe", Code: "ST", CallingCode: 239, Lengths: []int{7}},
	{Name: "Equatorial Guinea", Code: "GQ", CallingCode: 240, Lengths: []int{9}},
	{Name: "Gabon", Code: "GA", CallingCode: 241, Lengths: []int{7, 8}, TrunkPrefix: "0"},
	{Name: "Republic of the Congo", Code: "CG", CallingCode: 242, Lengths: []int{9}},
	{Name: "DR Congo", Code: "CD", CallingCode: 243, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Angola", Code: "AO", CallingCode: 244, Lengths: []int{9}},
	{Name: "Guinea-Bissau", Code: "GW", CallingCode: 245, Lengths: []int{7, 9}},
	{Name: "British Indian Ocean Territory", Code: "IO", CallingCode: 246, Lengths: []int{7}},
	{Name: "Ascension Island", Code: "AC", CallingCode: 247, Lengths: []int{4, 5}},
	{Name: "Seychelles", Code: "SC", CallingCode: 248, Lengths: []int{7}},
	{Name: "Sudan", Code: "SD", CallingCode: 249, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Rwanda", Code: "RW", CallingCode: 250, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Ethiopia", Code: "ET", CallingCode: 251, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Somalia", Code: "SO", CallingCode: 252, Lengths: []int{7, 8, 9}, TrunkPrefix: "0"},
	{Name: "Djibouti", Code: "DJ", CallingCode: 253, Lengths: []int{8}},
	{
		Name: "Kenya", Code: "KE", CallingCode: 254, Lengths: []int{9, 10}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"7", Mobile},
			{"1", Mobile},
			{"800", TollFree},
			{"900", PremiumRate},
			{"2", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
			{"6", FixedLine},
		},
	},
	{Name: "Tanzania", Code: "TZ", CallingCode: 255, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Uganda", Code: "UG", CallingCode: 256, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Burundi", Code: "BI", CallingCode: 257, Lengths: []int{8}},
	{Name: "Mozambique", Code: "MZ", CallingCode: 258, Lengths: []int{8, 9}},
	{Name: "Zambia", Code: "ZM", CallingCode: 260, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Madagascar", Code: "MG", CallingCode: 261, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Reunion", Code: "RE", CallingCode: 262, Lengths: []int{9}, TrunkPrefix: "0", Default: true},
	{Name: "Mayotte", Code: "YT", CallingCode: 262, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Zimbabwe", Code: "ZW", CallingCode: 263, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Namibia", Code: "NA", CallingCode: 264, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Malawi", Code: "MW", CallingCode: 265, Lengths: []int{7, 9}, TrunkPrefix: "0"},
	{Name: "Lesotho", Code: "LS", CallingCode: 266, Lengths: []int{8}},
	{Name: "Botswana", Code: "BW", CallingCode: 267, Lengths: []int{7, 8}},
	{Name: "Eswatini", Code: "SZ", CallingCode: 268, Lengths: []int{8}},
	{Name: "Comoros", Code: "KM", CallingCode: 269, Lengths: []int{7}},
	{Name: "Saint Helena", Code: "SH", CallingCode: 290, Lengths: []int{4, 5}},
	{Name: "Eritrea", Code: "ER", CallingCode: 291, Lengths: []int{7}, TrunkPrefix: "0"},
	{Name: "Aruba", Code: "AW", CallingCode: 297, Lengths: []int{7}},
	{Name: "Faroe Islands", Code: "FO", CallingCode: 298, Lengths: []int{6}},
	{Name: "Greenland", Code: "GL", CallingCode: 299, Lengths: []int{6}},
	{Name: "Gibraltar", Code: "GI", CallingCode: 350, Lengths: []int{8}},
	{Name: "Portugal", Code: "PT", CallingCode: 351, Lengths: []int{9}},
	{Name: "Luxembourg", Code: "LU", CallingCode: 352, Lengths: []int{4, 5, 6, 7, 8, 9, 10, 11}},
	{
		Name: "Ireland", Code: "IE", CallingCode: 353, Lengths: []int{7, 8, 9}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"8", Mobile},
			{"1800", TollFree},
			{"1850", SharedCost},
			{"1890", SharedCost},
			{"15", PremiumRate},
			{"76", Voip},
			{"700", PersonalNumber},
			{"818", Uan},
			{"1", FixedLine},
			{"2", FixedLine},
			{"4", FixedLine},
			{"5", FixedLine},
			{"6", FixedLine},
			{"7", FixedLine},
			{"9", FixedLine},
		},
	},
	{Name: "Iceland", Code: "IS", CallingCode: 354, Lengths: []int{7}},
	{Name: "Albania", Code: "AL", CallingCode: 355, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "Malta", Code: "MT", CallingCode: 356, Lengths: []int{8}},
	{Name: "Cyprus", Code: "CY", CallingCode: 357, Lengths: []int{8}},
	{Name: "Finland", Code: "FI", CallingCode: 358, Lengths: []int{5, 6, 7, 8, 9, 10, 11, 12}, TrunkPrefix: "0", Default: true},
	{Name: "Aland Islands", Code: "AX", CallingCode: 358, Lengths: []int{5, 6, 7, 8, 9, 10}, TrunkPrefix: "0"},
	{Name: "Bulgaria", Code: "BG", CallingCode: 359, Lengths: []int{7, 8, 9}, TrunkPrefix: "0"},
	{Name: "Lithuania", Code: "LT", CallingCode: 370, Lengths: []int{8}, TrunkPrefix: "8"},
	{Name: "Latvia", Code: "LV", CallingCode: 371, Lengths: []int{8}},
	{Name: "Estonia", Code: "EE", CallingCode: 372, Lengths: []int{7, 8}},
	{Name: "Moldova", Code: "MD", CallingCode: 373, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Armenia", Code: "AM", CallingCode: 374, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Belarus", Code: "BY", CallingCode: 375, Lengths: []int{9}, TrunkPrefix: "8"},
	{Name: "Andorra", Code: "AD", CallingCode: 376, Lengths: []int{6, 8, 9}},
	{Name: "Monaco", Code: "MC", CallingCode: 377, Lengths: []int{8, 9}},
	{Name: "San Marino", Code: "SM", CallingCode: 378, Lengths: []int{6, 8, 9, 10}},
	{Name: "Vatican City", Code: "VA", CallingCode: 379, Lengths: []int{9}},
	{Name: "Ukraine", Code: "UA", CallingCode: 380, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Serbia", Code: "RS", CallingCode: 381, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "Montenegro", Code: "ME", CallingCode: 382, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Kosovo", Code: "XK", CallingCode: 383, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Croatia", Code: "HR", CallingCode: 385, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "Slovenia", Code: "SI", CallingCode: 386, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Bosnia and Herzegovina", Code: "BA", CallingCode: 387, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "North Macedonia", Code: "MK", CallingCode: 389, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Czech Republic", Code: "CZ", CallingCode: 420, Lengths: []int{9}},
	{Name: "Slovakia", Code: "SK", CallingCode: 421, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Liechtenstein", Code: "LI", CallingCode: 423, Lengths: []int{7, 9}},
	{Name: "Falkland Islands", Code: "FK", CallingCode: 500, Lengths: []int{5}},
	{Name: "Belize", Code: "BZ", CallingCode: 501, Lengths: []int{7}},
	{Name: "Guatemala", Code: "GT", CallingCode: 502, Lengths: []int{8}},
	{Name: "El Salvador", Code: "SV", CallingCode: 503, Lengths: []int{8}},
	{Name: "Honduras", Code: "HN", CallingCode: 504, Lengths: []int{8}},
	{Name: "Nicaragua", Code: "NI", CallingCode: 505, Lengths: []int{8}},
	{Name: "Costa Rica", Code: "CR", CallingCode: 506, Lengths: []int{8}},
	{Name: "Panama", Code: "PA", CallingCode: 507, Lengths: []int{7, 8}},
	{Name: "Saint Pierre and Miquelon", Code: "PM", CallingCode: 508, Lengths: []int{6, 8, 9}, TrunkPrefix: "0"},
	{Name: "Haiti", Code: "HT", CallingCode: 509, Lengths: []int{8}},
	{Name: "Guadeloupe", Code: "GP", CallingCode: 590, Lengths: []int{9}, TrunkPrefix: "0", Default: true},
	{Name: "Saint Barthelemy", Code: "BL", CallingCode: 590, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Saint Martin", Code: "MF", CallingCode: 590, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Bolivia", Code: "BO", CallingCode: 591, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Guyana", Code: "GY", CallingCode: 592, Lengths: []int{7}},
	{Name: "Ecuador", Code: "EC", CallingCode: 593, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "French Guiana", Code: "GF", CallingCode: 594, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Paraguay", Code: "PY", CallingCode: 595, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Martinique", Code: "MQ", CallingCode: 596, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Suriname", Code: "SR", CallingCode: 597, Lengths: []int{6, 7}},
	{Name: "Uruguay", Code: "UY", CallingCode: 598, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Curacao", Code: "CW", CallingCode: 599, Lengths: []int{7, 8}, Default: true},
	{Name: "Caribbean Netherlands", Code: "BQ", CallingCode: 599, Lengths: []int{7}},
	{Name: "Timor-Leste", Code: "TL", CallingCode: 670, Lengths: []int{7, 8}},
	{Name: "Norfolk Island", Code: "NF", CallingCode: 672, Lengths: []int{6}, Default: true},
	{Name: "Antarctica", Code: "AQ", CallingCode: 672, Lengths: []int{6}},
	{Name: "Brunei", Code: "BN", CallingCode: 673, Lengths: []int{7}},
	{Name: "Nauru", Code: "NR", CallingCode: 674, Lengths: []int{7}},
	{Name: "Papua New Guinea", Code: "PG", CallingCode: 675, Lengths: []int{7, 8}},
	{Name: "Tonga", Code: "TO", CallingCode: 676, Lengths: []int{5, 7, 8}},
	{Name: "Solomon Islands", Code: "SB", CallingCode: 677, Lengths: []int{5, 7}},
	{Name: "Vanuatu", Code: "VU", CallingCode: 678, Lengths: []int{5, 7}},
	{Name: "Fiji", Code: "FJ", CallingCode: 679, Lengths: []int{7}},
	{Name: "Palau", Code: "PW", CallingCode: 680, Lengths: []int{7}},
	{Name: "Wallis and Futuna", Code: "WF", CallingCode: 681, Lengths: []int{6}},
	{Name: "Cook Islands", Code: "CK", CallingCode: 682, Lengths: []int{5}},
	{Name: "Niue", Code: "NU", CallingCode: 683, Lengths: []int{4, 7}},
	{Name: "Samoa", Code: "WS", CallingCode: 685, Lengths: []int{5, 6, 7}},
	{Name: "Kiribati", Code: "KI", CallingCode: 686, Lengths: []int{5, 8}},
	{Name: "New Caledonia", Code: "NC", CallingCode: 687, Lengths: []int{6}},
	{Name: "Tuvalu", Code: "TV", CallingCode: 688, Lengths: []int{5, 6}},
	{Name: "French Polynesia", Code: "PF", CallingCode: 689, Lengths: []int{8}},
	{Name: "Tokelau", Code: "TK", CallingCode: 690, Lengths: []int{4, 5, 6, 7}},
	{Name: "Micronesia", Code: "FM", CallingCode: 691, Lengths: []int{7}},
	{Name: "Marshall Islands", Code: "MH", CallingCode: 692, Lengths: []int{7}, TrunkPrefix: "1"},
	{Name: "North Korea", Code: "KP", CallingCode: 850, Lengths: []int{8, 10}, TrunkPrefix: "0"},
	{Name: "Hong Kong", Code: "HK", CallingCode: 852, Lengths: []int{8}},
	{Name: "Macau", Code: "MO", CallingCode: 853, Lengths: []int{8}},
	{Name: "Cambodia", Code: "KH", CallingCode: 855, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "Laos", Code: "LA", CallingCode: 856, Lengths: []int{8, 9, 10}, TrunkPrefix: "0"},
	{Name: "Bangladesh", Code: "BD", CallingCode: 880, Lengths: []int{10}, TrunkPrefix: "0"},
	{Name: "Taiwan", Code: "TW", CallingCode: 886, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "Maldives", Code: "MV", CallingCode: 960, Lengths: []int{7}},
	{Name: "Lebanon", Code: "LB", CallingCode: 961, Lengths: []int{7, 8}, TrunkPrefix: "0"},
	{Name: "Jordan", Code: "JO", CallingCode: 962, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "Syria", Code: "SY", CallingCode: 963, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Iraq", Code: "IQ", CallingCode: 964, Lengths: []int{8, 9, 10}, TrunkPrefix: "0"},
	{Name: "Kuwait", Code: "KW", CallingCode: 965, Lengths: []int{8}},
	{
		Name: "Saudi Arabia", Code: "SA", CallingCode: 966, Lengths: []int{9}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"5", Mobile},
			{"800", TollFree},
			{"920", SharedCost},
			{"1", FixedLine},
		},
	},
	{Name: "Yemen", Code: "YE", CallingCode: 967, Lengths: []int{7, 8, 9}, TrunkPrefix: "0"},
	{Name: "Oman", Code: "OM", CallingCode: 968, Lengths: []int{8}},
	{Name: "Palestine", Code: "PS", CallingCode: 970, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{
		Name: "United Arab Emirates", Code: "AE", CallingCode: 971, Lengths: []int{8, 9}, TrunkPrefix: "0",
		Patterns: []Pattern{
			{"5", Mobile},
			{"800", TollFree},
			{"900", PremiumRate},
			{"600", Uan},
			{"2", FixedLine},
			{"3", FixedLine},
			{"4", FixedLine},
			{"6", FixedLine},
			{"7", FixedLine},
			{"9", FixedLine},
		},
	},
	{Name: "Israel", Code: "IL", CallingCode: 972, Lengths: []int{8, 9}, TrunkPrefix: "0"},
	{Name: "Bahrain", Code: "BH", CallingCode: 973, Lengths: []int{8}},
	{Name: "Qatar", Code: "QA", CallingCode: 974, Lengths: []int{8}},
	{Name: "Bhutan", Code: "BT", CallingCode: 975, Lengths: []int{7, 8}},
	{Name: "Mongolia", Code: "MN", CallingCode: 976, Lengths: []int{8}, TrunkPrefix: "0"},
	{Name: "Nepal", Code: "NP", CallingCode: 977, Lengths: []int{8, 10}, TrunkPrefix: "0"},
	{Name: "Tajikistan", Code: "TJ", CallingCode: 992, Lengths: []int{9}, TrunkPrefix: "8"},
	{Name: "Turkmenistan", Code: "TM", CallingCode: 993, Lengths: []int{8, 9}, TrunkPrefix: "8"},
	{Name: "Azerbaijan", Code: "AZ", CallingCode: 994, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Georgia", Code: "GE", CallingCode: 995, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Kyrgyzstan", Code: "KG", CallingCode: 996, Lengths: []int{9}, TrunkPrefix: "0"},
	{Name: "Uzbekistan", Code: "UZ", CallingCode: 998, Lengths: []int{9}},
}
