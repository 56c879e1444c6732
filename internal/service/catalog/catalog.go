package catalog

// Default returns the built-in quiz pool. Entries are TMDB movie ids; the
// pool leans on widely known titles so most parties recognize what they
// swipe on.
func Default() []int64 {
	ids := make([]int64, len(pool))
	copy(ids, pool)
	return ids
}

var pool = []int64{
	278,    // The Shawshank Redemption
	238,    // The Godfather
	155,    // The Dark Knight
	680,    // Pulp Fiction
	550,    // Fight Club
	13,     // Forrest Gump
	27205,  // Inception
	157336, // Interstellar
	603,    // The Matrix
	122,    // The Lord of the Rings: The Return of the King
	120,    // The Lord of the Rings: The Fellowship of the Ring
	129,    // Spirited Away
	496243, // Parasite
	424,    // Schindler's List
	769,    // GoodFellas
	807,    // Se7en
	274,    // The Silence of the Lambs
	98,     // Gladiator
	862,    // Toy Story
	105,    // Back to the Future
	85,     // Raiders of the Lost Ark
	329,    // Jurassic Park
	11,     // Star Wars
	1891,   // The Empire Strikes Back
	78,     // Blade Runner
	335984, // Blade Runner 2049
	694,    // The Shining
	348,    // Alien
	218,    // The Terminator
	280,    // Terminator 2: Judgment Day
	115,    // The Big Lebowski
	76341,  // Mad Max: Fury Road
	313369, // La La Land
	324857, // Spider-Man: Into the Spider-Verse
	475557, // Joker
	419430, // Get Out
	546554, // Knives Out
	438631, // Dune
	361743, // Top Gun: Maverick
	106646, // The Wolf of Wall Street
	68718,  // Django Unchained
	16869,  // Inglourious Basterds
	10681,  // WALL-E
	14160,  // Up
	354912, // Coco
	2062,   // Ratatouille
	372058, // Your Name
	4935,   // Howl's Moving Castle
}
