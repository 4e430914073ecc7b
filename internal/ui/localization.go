package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyAppSubtitle        = "app_subtitle"
	KeyFile               = "file"
	KeyRefresh            = "refresh"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyQuit               = "quit"
	KeyUploadTitle        = "upload_title"
	KeyDropHint           = "drop_hint"
	KeyFormatsHint        = "formats_hint"
	KeySelectImage        = "select_image"
	KeySelectedFiles      = "selected_files"
	KeyUploadButton       = "upload_button"
	KeyUploading          = "uploading"
	KeyRemove             = "remove"
	KeyUploadFailed       = "upload_failed"
	KeyGalleryTitle       = "gallery_title"
	KeyGalleryEmpty       = "gallery_empty"
	KeyLoadingImages      = "loading_images"
	KeyDimensions         = "dimensions"
	KeyOriginalSize       = "original_size"
	KeyReduction          = "reduction"
	KeyFormat             = "format"
	KeyView               = "view"
	KeyDelete             = "delete"
	KeyConfirmDeleteTitle = "confirm_delete_title"
	KeyConfirmDelete      = "confirm_delete"
	KeyDeleteFailed       = "delete_failed"
	KeyImageError         = "image_error"
	KeyError              = "error"
	KeyAPIURL             = "api_url"
	KeyImageWorkers       = "image_workers"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyRestartRequired    = "restart_required"
	KeyInvalidAPIURL      = "invalid_api_url"
	KeyErrorOpeningURL    = "error_opening_url"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "ImageBoost",
		KeyAppSubtitle:        "Automatic image optimization",
		KeyFile:               "File",
		KeyRefresh:            "Refresh",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyQuit:               "Quit",
		KeyUploadTitle:        "Upload images",
		KeyDropHint:           "Drop your images on this window",
		KeyFormatsHint:        "Supported formats: JPG, PNG, GIF, WebP, BMP",
		KeySelectImage:        "Select image",
		KeySelectedFiles:      "Selected files (%d)",
		KeyUploadButton:       "Upload %d image(s)",
		KeyUploading:          "Uploading...",
		KeyRemove:             "Remove",
		KeyUploadFailed:       "Failed to upload %s: %s",
		KeyGalleryTitle:       "Optimized Image Gallery (%d)",
		KeyGalleryEmpty:       "No images yet. Upload your first image!",
		KeyLoadingImages:      "Loading images...",
		KeyDimensions:         "Dimensions:",
		KeyOriginalSize:       "Original size:",
		KeyReduction:          "Reduction:",
		KeyFormat:             "Format:",
		KeyView:               "View",
		KeyDelete:             "Delete",
		KeyConfirmDeleteTitle: "Delete image",
		KeyConfirmDelete:      "Are you sure you want to delete this image?",
		KeyDeleteFailed:       "Failed to delete image",
		KeyImageError:         "Loading error",
		KeyError:              "Error",
		KeyAPIURL:             "Backend URL",
		KeyImageWorkers:       "Parallel image loads",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyRestartRequired:    "Restart the application to apply the new backend URL or load settings.",
		KeyInvalidAPIURL:      "Invalid backend URL",
		KeyErrorOpeningURL:    "Error opening image",
	}

	// French texts
	l.texts["fr"] = map[string]string{
		KeyAppTitle:           "ImageBoost",
		KeyAppSubtitle:        "Optimisation automatique d'images",
		KeyFile:               "Fichier",
		KeyRefresh:            "Actualiser",
		KeySettings:           "Paramètres",
		KeyLanguage:           "Langue",
		KeyQuit:               "Quitter",
		KeyUploadTitle:        "Télécharger des images",
		KeyDropHint:           "Glissez-déposez vos images sur cette fenêtre",
		KeyFormatsHint:        "Formats supportés : JPG, PNG, GIF, WebP, BMP",
		KeySelectImage:        "Choisir une image",
		KeySelectedFiles:      "Fichiers sélectionnés (%d)",
		KeyUploadButton:       "Télécharger %d image(s)",
		KeyUploading:          "Téléchargement...",
		KeyRemove:             "Retirer",
		KeyUploadFailed:       "Erreur lors du téléchargement de %s : %s",
		KeyGalleryTitle:       "Galerie d'Images Optimisées (%d)",
		KeyGalleryEmpty:       "Aucune image pour le moment. Téléchargez votre première image !",
		KeyLoadingImages:      "Chargement des images...",
		KeyDimensions:         "Dimensions :",
		KeyOriginalSize:       "Taille originale :",
		KeyReduction:          "Réduction :",
		KeyFormat:             "Format :",
		KeyView:               "Voir",
		KeyDelete:             "Supprimer",
		KeyConfirmDeleteTitle: "Supprimer l'image",
		KeyConfirmDelete:      "Êtes-vous sûr de vouloir supprimer cette image ?",
		KeyDeleteFailed:       "Erreur lors de la suppression de l'image",
		KeyImageError:         "Erreur de chargement",
		KeyError:              "Erreur",
		KeyAPIURL:             "URL du serveur",
		KeyImageWorkers:       "Chargements d'images parallèles",
		KeySave:               "Enregistrer",
		KeyCancel:             "Annuler",
		KeySettingsSaved:      "Paramètres enregistrés !",
		KeyRestartRequired:    "Redémarrez l'application pour appliquer la nouvelle URL ou les paramètres de chargement.",
		KeyInvalidAPIURL:      "URL du serveur invalide",
		KeyErrorOpeningURL:    "Erreur lors de l'ouverture de l'image",
	}
}
