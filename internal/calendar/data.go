package calendar

import "time"

// epoch is BS 1976 Baisakh 1, the first day covered by bikramSambatYears.
var epoch = time.Date(1919, time.April, 13, 0, 0, 0, 0, time.UTC)

// bikramSambatYears lists the days in each month of every supported BS year.
var bikramSambatYears = []YearEntry{
	{Year: 1976, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 1977, Months: [12]int{30, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31}},
	{Year: 1978, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 1979, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 1980, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 1981, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{Year: 1982, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 1983, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 1984, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 1985, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{Year: 1986, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 1987, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 1988, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 1989, Months: [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 1990, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 1991, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{Year: 1992, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 1993, Months: [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 1994, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 1995, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{Year: 1996, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 1997, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 1998, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 1999, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2000, Months: [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2001, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2002, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2003, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2004, Months: [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2005, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2006, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2007, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2008, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{Year: 2009, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2010, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2011, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2012, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{Year: 2013, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2014, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2015, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2016, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{Year: 2017, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2018, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2019, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2020, Months: [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2021, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2022, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{Year: 2023, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2024, Months: [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2025, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2026, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2027, Months: [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2028, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2029, Months: [12]int{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2030, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2031, Months: [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2032, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2033, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2034, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2035, Months: [12]int{30, 32, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{Year: 2036, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2037, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2038, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2039, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{Year: 2040, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2041, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2042, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2043, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{Year: 2044, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2045, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2046, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2047, Months: [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2048, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2049, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{Year: 2050, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2051, Months: [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2052, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2053, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{Year: 2054, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2055, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2056, Months: [12]int{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2057, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2058, Months: [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2059, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2060, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2061, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2062, Months: [12]int{30, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31}},
	{Year: 2063, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2064, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2065, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2066, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{Year: 2067, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2068, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2069, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2070, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{Year: 2071, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2072, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2073, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2074, Months: [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2075, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2076, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{Year: 2077, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2078, Months: [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2079, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2080, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{Year: 2081, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2082, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2083, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2084, Months: [12]int{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}},
	{Year: 2085, Months: [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2086, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2087, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2088, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2089, Months: [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{Year: 2090, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2091, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2092, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2093, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{Year: 2094, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2095, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2096, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{Year: 2097, Months: [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{Year: 2098, Months: [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{Year: 2099, Months: [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{Year: 2100, Months: [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
}
