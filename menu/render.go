package menu

func Draw(c *Console, title string, items []Item) {
	c.Println()
	c.Println(title)
	for i, it := range items {
		c.Printf("%d. %s\n", i+1, it.Field)
	}
}
