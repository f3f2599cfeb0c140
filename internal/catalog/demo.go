package catalog

// Demo returns the built-in catalog used when no source is configured.
func Demo() *Catalog {
	return &Catalog{Albums: normalize([]Item{
		{
			ID: "a1", Title: "Album One", Artist: "Artist A", Cover: "https://picsum.photos/700?1",
			Children: []Item{
				{ID: "t1", Title: "Track 1", Artist: "Artist A", Cover: "https://picsum.photos/700?11"},
				{ID: "t2", Title: "Track 2", Artist: "Artist A", Cover: "https://picsum.photos/700?12"},
				{ID: "t3", Title: "Track 3", Artist: "Artist A", Cover: "https://picsum.photos/700?13"},
			},
		},
		{
			ID: "a2", Title: "Album Two", Artist: "Artist B", Cover: "https://picsum.photos/700?2",
			Children: []Item{
				{ID: "t4", Title: "Song A", Artist: "Artist B", Cover: "https://picsum.photos/700?21"},
				{ID: "t5", Title: "Song B", Artist: "Artist B", Cover: "https://picsum.photos/700?22"},
			},
		},
		{
			ID: "a3", Title: "Album Three", Artist: "Artist C", Cover: "https://picsum.photos/700?3",
			Children: []Item{
				{ID: "t6", Title: "Track X", Artist: "Artist C", Cover: "https://picsum.photos/700?31"},
			},
		},
		{ID: "a4", Title: "Album Four", Artist: "Artist D", Cover: "https://picsum.photos/700?4"},
		{ID: "a5", Title: "Album Five", Artist: "Artist E", Cover: "https://picsum.photos/700?5"},
		{ID: "a6", Title: "Album Six", Artist: "Artist F", Cover: "https://picsum.photos/700?6"},
		{ID: "a7", Title: "Album Seven", Artist: "Artist G", Cover: "https://picsum.photos/700?7"},
	})}
}
