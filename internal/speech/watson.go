// Package speech converts recognized canvas text to audible speech using
// the IBM Watson Text to Speech and Language Translator services.
package speech

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/IBM/go-sdk-core/v5/core"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/watson-developer-cloud/go-sdk/v2/languagetranslatorv3"
	"github.com/watson-developer-cloud/go-sdk/v2/texttospeechv1"
)

// Config holds Watson credentials and synthesis settings.
type Config struct {
	TTSAPIKey        string
	TTSURL           string
	TranslateAPIKey  string
	TranslateURL     string
	TranslateVersion string
	EnglishVoice     string
	FrenchVoice      string
	TranslateModel   string
	SpeechPath       string
}

// Watson synthesizes speech through the Watson cloud services, writing
// the MP3 to a fixed path (overwritten on every synthesis) and playing
// it on the default audio device.
type Watson struct {
	cfg Config
}

// NewWatson creates a Watson synthesizer with the given configuration.
func NewWatson(cfg Config) *Watson {
	if cfg.SpeechPath == "" {
		cfg.SpeechPath = "speech.mp3"
	}
	return &Watson{cfg: cfg}
}

// Speak synthesizes the text and plays it back. When translate is true
// the text is first translated from English to French and spoken with
// the French voice.
func (w *Watson) Speak(text string, translate bool) error {
	voice := w.cfg.EnglishVoice

	if translate {
		translated, err := w.translate(text)
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}
		text = translated
		voice = w.cfg.FrenchVoice
	}

	if err := w.synthesize(text, voice); err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}

	if err := play(w.cfg.SpeechPath); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	return nil
}

// translate converts English text to French through the Watson Language
// Translator service.
func (w *Watson) translate(text string) (string, error) {
	service, err := languagetranslatorv3.NewLanguageTranslatorV3(&languagetranslatorv3.LanguageTranslatorV3Options{
		Version:       core.StringPtr(w.cfg.TranslateVersion),
		Authenticator: &core.IamAuthenticator{ApiKey: w.cfg.TranslateAPIKey},
	})
	if err != nil {
		return "", err
	}
	if err := service.SetServiceURL(w.cfg.TranslateURL); err != nil {
		return "", err
	}

	result, _, err := service.Translate(&languagetranslatorv3.TranslateOptions{
		Text:    []string{text},
		ModelID: core.StringPtr(w.cfg.TranslateModel),
	})
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Translations) == 0 || result.Translations[0].Translation == nil {
		return "", fmt.Errorf("empty translation result")
	}

	return *result.Translations[0].Translation, nil
}

// synthesize writes the spoken text as MP3 to the configured path.
func (w *Watson) synthesize(text, voice string) error {
	service, err := texttospeechv1.NewTextToSpeechV1(&texttospeechv1.TextToSpeechV1Options{
		Authenticator: &core.IamAuthenticator{ApiKey: w.cfg.TTSAPIKey},
	})
	if err != nil {
		return err
	}
	if err := service.SetServiceURL(w.cfg.TTSURL); err != nil {
		return err
	}

	audio, _, err := service.Synthesize(&texttospeechv1.SynthesizeOptions{
		Text:   core.StringPtr(text),
		Accept: core.StringPtr("audio/mp3"),
		Voice:  core.StringPtr(voice),
	})
	if err != nil {
		return err
	}
	defer audio.Close()

	out, err := os.Create(w.cfg.SpeechPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, audio); err != nil {
		return err
	}

	return nil
}

var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// play decodes the MP3 file and plays it, blocking until playback ends.
// The audio device is initialized once with the first file's sample
// rate; later files are resampled to it.
func play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return err
	}
	defer streamer.Close()

	speakerOnce.Do(func() {
		speakerRate = format.SampleRate
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return speakerErr
	}

	done := make(chan struct{})
	var stream beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		stream = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}
	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))
	<-done

	return nil
}
