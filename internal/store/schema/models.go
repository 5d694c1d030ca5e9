package schema

// Models lists every table, in dependency order, for migrations
func Models() []any {
	return []any{
		&Block{},
		&Transaction{},
		&Extrinsic{},
		&Class{},
		&Contract{},
		&Asset{},
		&LockedAsset{},
	}
}
