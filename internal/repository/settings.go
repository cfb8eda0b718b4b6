package repository

import "context"

const listPublicSettings = `
SELECT setting_key, setting_value, setting_group, is_public
FROM site_settings
WHERE is_public = TRUE
ORDER BY setting_group, setting_key
`

// ListPublicSettings returns every public site setting.
func (q *Queries) ListPublicSettings(ctx context.Context) ([]SiteSetting, error) {
	rows, err := q.db.QueryContext(ctx, listPublicSettings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []SiteSetting
	for rows.Next() {
		var s SiteSetting
		if err := rows.Scan(&s.SettingKey, &s.SettingValue, &s.SettingGroup, &s.IsPublic); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

const getPublicSetting = `
SELECT setting_key, setting_value, setting_group, is_public
FROM site_settings
WHERE setting_key = $1 AND is_public = TRUE
`

// GetPublicSetting returns one public setting by key.
func (q *Queries) GetPublicSetting(ctx context.Context, key string) (SiteSetting, error) {
	var s SiteSetting
	err := q.db.QueryRowContext(ctx, getPublicSetting, key).
		Scan(&s.SettingKey, &s.SettingValue, &s.SettingGroup, &s.IsPublic)
	return s, err
}

const upsertSetting = `
INSERT INTO site_settings (setting_key, setting_value, setting_group, is_public)
VALUES ($1, $2, $3, $4)
ON CONFLICT (setting_key)
DO UPDATE SET setting_value = EXCLUDED.setting_value,
              setting_group = EXCLUDED.setting_group,
              is_public = EXCLUDED.is_public
`

// UpsertSettingParams carries one setting row.
type UpsertSettingParams struct {
	SettingKey   string
	SettingValue string
	SettingGroup string
	IsPublic     bool
}

// UpsertSetting creates or replaces a setting.
func (q *Queries) UpsertSetting(ctx context.Context, arg UpsertSettingParams) error {
	_, err := q.db.ExecContext(ctx, upsertSetting,
		arg.SettingKey, arg.SettingValue, arg.SettingGroup, arg.IsPublic)
	return err
}
