package handler

import (
	"net/http"
	"strings"

	sitedomain "wedding-site-go/internal/domain/site"
	"wedding-site-go/internal/validation"
)

type coupleRequest struct {
	BrideName        *string `json:"bride_name"`
	GroomName        *string `json:"groom_name"`
	BridePhoto       *string `json:"bride_photo"`
	GroomPhoto       *string `json:"groom_photo"`
	BrideDescription *string `json:"bride_description"`
	GroomDescription *string `json:"groom_description"`
	Story            *string `json:"story"`
	WeddingDate      *string `json:"wedding_date"`
	HeroImage        *string `json:"hero_image"`
}

type coupleResponse struct {
	ID               string `json:"id"`
	BrideName        string `json:"bride_name"`
	GroomName        string `json:"groom_name"`
	BridePhoto       string `json:"bride_photo"`
	GroomPhoto       string `json:"groom_photo"`
	BrideDescription string `json:"bride_description"`
	GroomDescription string `json:"groom_description"`
	Story            string `json:"story"`
	WeddingDate      string `json:"wedding_date"`
	HeroImage        string `json:"hero_image"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type settingsRequest struct {
	VenueName        *string `json:"venue_name"`
	VenueAddress     *string `json:"venue_address"`
	VenueMapURL      *string `json:"venue_map_url"`
	BrideBankName    *string `json:"bride_bank_name"`
	BrideBankAccount *string `json:"bride_bank_account"`
	BrideBankHolder  *string `json:"bride_bank_holder"`
	BrideQRImage     *string `json:"bride_qr_image"`
	GroomBankName    *string `json:"groom_bank_name"`
	GroomBankAccount *string `json:"groom_bank_account"`
	GroomBankHolder  *string `json:"groom_bank_holder"`
	GroomQRImage     *string `json:"groom_qr_image"`
	FooterText       *string `json:"footer_text"`
	FacebookURL      *string `json:"facebook_url"`
	InstagramURL     *string `json:"instagram_url"`
	YoutubeURL       *string `json:"youtube_url"`
	HeadingFont      *string `json:"heading_font"`
	BodyFont         *string `json:"body_font"`
	MusicEnabled     *bool   `json:"music_enabled"`
	MusicAutoplay    *bool   `json:"music_autoplay"`
	MusicVolume      *int    `json:"music_volume"`
}

type settingsResponse struct {
	ID               string `json:"id"`
	VenueName        string `json:"venue_name"`
	VenueAddress     string `json:"venue_address"`
	VenueMapURL      string `json:"venue_map_url"`
	BrideBankName    string `json:"bride_bank_name"`
	BrideBankAccount string `json:"bride_bank_account"`
	BrideBankHolder  string `json:"bride_bank_holder"`
	BrideQRImage     string `json:"bride_qr_image"`
	GroomBankName    string `json:"groom_bank_name"`
	GroomBankAccount string `json:"groom_bank_account"`
	GroomBankHolder  string `json:"groom_bank_holder"`
	GroomQRImage     string `json:"groom_qr_image"`
	FooterText       string `json:"footer_text"`
	FacebookURL      string `json:"facebook_url"`
	InstagramURL     string `json:"instagram_url"`
	YoutubeURL       string `json:"youtube_url"`
	HeadingFont      string `json:"heading_font"`
	BodyFont         string `json:"body_font"`
	MusicEnabled     bool   `json:"music_enabled"`
	MusicAutoplay    bool   `json:"music_autoplay"`
	MusicVolume      int    `json:"music_volume"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// Empty start_time or end_time clears the stored value.
type livestreamRequest struct {
	Active      *bool   `json:"active"`
	Platform    *string `json:"platform"`
	StreamURL   *string `json:"stream_url"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Thumbnail   *string `json:"thumbnail"`
	ChatEnabled *bool   `json:"chat_enabled"`
}

type livestreamResponse struct {
	ID          string  `json:"id"`
	Active      bool    `json:"active"`
	Platform    string  `json:"platform"`
	StreamURL   string  `json:"stream_url"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Thumbnail   string  `json:"thumbnail"`
	ChatEnabled bool    `json:"chat_enabled"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (h *Handlers) GetCouple(w http.ResponseWriter, r *http.Request) {
	info, err := h.Site.GetCouple(r.Context())
	if err != nil {
		h.fail(w, "couple.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toCoupleResponse(*info))
}

func (h *Handlers) UpsertCouple(w http.ResponseWriter, r *http.Request) {
	var req coupleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "couple.upsert", err)
		return
	}

	weddingDate, err := parseTimeParam("wedding_date", req.WeddingDate)
	if err != nil {
		h.fail(w, "couple.upsert", err)
		return
	}

	info, err := h.Site.UpsertCouple(r.Context(), sitedomain.CoupleInput{
		BrideName:        req.BrideName,
		GroomName:        req.GroomName,
		BridePhoto:       req.BridePhoto,
		GroomPhoto:       req.GroomPhoto,
		BrideDescription: req.BrideDescription,
		GroomDescription: req.GroomDescription,
		Story:            req.Story,
		WeddingDate:      weddingDate,
		HeroImage:        req.HeroImage,
	})
	if err != nil {
		h.fail(w, "couple.upsert", err)
		return
	}
	writeJSON(w, http.StatusOK, toCoupleResponse(*info))
}

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Site.GetSettings(r.Context())
	if err != nil {
		h.fail(w, "settings.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(*settings))
}

func (h *Handlers) UpsertSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "settings.upsert", err)
		return
	}

	settings, err := h.Site.UpsertSettings(r.Context(), sitedomain.SettingsInput{
		VenueName:        req.VenueName,
		VenueAddress:     req.VenueAddress,
		VenueMapURL:      req.VenueMapURL,
		BrideBankName:    req.BrideBankName,
		BrideBankAccount: req.BrideBankAccount,
		BrideBankHolder:  req.BrideBankHolder,
		BrideQRImage:     req.BrideQRImage,
		GroomBankName:    req.GroomBankName,
		GroomBankAccount: req.GroomBankAccount,
		GroomBankHolder:  req.GroomBankHolder,
		GroomQRImage:     req.GroomQRImage,
		FooterText:       req.FooterText,
		FacebookURL:      req.FacebookURL,
		InstagramURL:     req.InstagramURL,
		YoutubeURL:       req.YoutubeURL,
		HeadingFont:      req.HeadingFont,
		BodyFont:         req.BodyFont,
		MusicEnabled:     req.MusicEnabled,
		MusicAutoplay:    req.MusicAutoplay,
		MusicVolume:      req.MusicVolume,
	})
	if err != nil {
		h.fail(w, "settings.upsert", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(*settings))
}

func (h *Handlers) GetLivestream(w http.ResponseWriter, r *http.Request) {
	live, err := h.Site.GetLivestream(r.Context())
	if err != nil {
		h.fail(w, "livestream.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toLivestreamResponse(*live))
}

func (h *Handlers) UpsertLivestream(w http.ResponseWriter, r *http.Request) {
	var req livestreamRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidJSON(w, "livestream.upsert", err)
		return
	}

	input := sitedomain.LivestreamInput{
		Active:      req.Active,
		Platform:    req.Platform,
		StreamURL:   req.StreamURL,
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		ChatEnabled: req.ChatEnabled,
	}
	start, startErr := parseTimeParam("start_time", req.StartTime)
	end, endErr := parseTimeParam("end_time", req.EndTime)
	if err := validation.Merge(startErr, endErr); err != nil {
		h.fail(w, "livestream.upsert", err)
		return
	}
	input.StartTime = start
	input.EndTime = end
	input.ClearStartTime = req.StartTime != nil && strings.TrimSpace(*req.StartTime) == ""
	input.ClearEndTime = req.EndTime != nil && strings.TrimSpace(*req.EndTime) == ""

	live, err := h.Site.UpsertLivestream(r.Context(), input)
	if err != nil {
		h.fail(w, "livestream.upsert", err)
		return
	}
	writeJSON(w, http.StatusOK, toLivestreamResponse(*live))
}

func toCoupleResponse(info sitedomain.CoupleInfo) coupleResponse {
	return coupleResponse{
		ID:               info.ID,
		BrideName:        info.BrideName,
		GroomName:        info.GroomName,
		BridePhoto:       info.BridePhoto,
		GroomPhoto:       info.GroomPhoto,
		BrideDescription: info.BrideDescription,
		GroomDescription: info.GroomDescription,
		Story:            info.Story,
		WeddingDate:      formatTime(info.WeddingDate),
		HeroImage:        info.HeroImage,
		CreatedAt:        formatTime(info.CreatedAt),
		UpdatedAt:        formatTime(info.UpdatedAt),
	}
}

func toSettingsResponse(s sitedomain.Settings) settingsResponse {
	return settingsResponse{
		ID:               s.ID,
		VenueName:        s.VenueName,
		VenueAddress:     s.VenueAddress,
		VenueMapURL:      s.VenueMapURL,
		BrideBankName:    s.BrideBankName,
		BrideBankAccount: s.BrideBankAccount,
		BrideBankHolder:  s.BrideBankHolder,
		BrideQRImage:     s.BrideQRImage,
		GroomBankName:    s.GroomBankName,
		GroomBankAccount: s.GroomBankAccount,
		GroomBankHolder:  s.GroomBankHolder,
		GroomQRImage:     s.GroomQRImage,
		FooterText:       s.FooterText,
		FacebookURL:      s.FacebookURL,
		InstagramURL:     s.InstagramURL,
		YoutubeURL:       s.YoutubeURL,
		HeadingFont:      s.HeadingFont,
		BodyFont:         s.BodyFont,
		MusicEnabled:     s.MusicEnabled,
		MusicAutoplay:    s.MusicAutoplay,
		MusicVolume:      s.MusicVolume,
		CreatedAt:        formatTime(s.CreatedAt),
		UpdatedAt:        formatTime(s.UpdatedAt),
	}
}

func toLivestreamResponse(live sitedomain.Livestream) livestreamResponse {
	return livestreamResponse{
		ID:          live.ID,
		Active:      live.Active,
		Platform:    live.Platform,
		StreamURL:   live.StreamURL,
		Title:       live.Title,
		Description: live.Description,
		StartTime:   formatTimePtr(live.StartTime),
		EndTime:     formatTimePtr(live.EndTime),
		Thumbnail:   live.Thumbnail,
		ChatEnabled: live.ChatEnabled,
		CreatedAt:   formatTime(live.CreatedAt),
		UpdatedAt:   formatTime(live.UpdatedAt),
	}
}
