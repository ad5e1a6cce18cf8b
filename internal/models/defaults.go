package models

// DefaultCatalog returns the built-in media document used when the catalog
// file does not exist yet or cannot be read. GET requests degrade to this
// document instead of erroring; the file itself is created on first write.
func DefaultCatalog() *Catalog {
	return &Catalog{
		RU: &LocaleData{
			Music: MusicCollection{
				ListTitle: "Список произведений",
				Tracks: []*AudioTrack{
					{
						ID:       "1",
						Title:    "Симфония № 1",
						Composer: "М. Б. Тертерян",
						Duration: "4:32",
						Src:      "/audio/symphony1.mp3",
					},
					{
						ID:       "2",
						Title:    "Струнный квартет № 2",
						Composer: "М. Б. Тертерян",
						Duration: "6:18",
						Src:      "/audio/quartet2.mp3",
					},
					{
						ID:       "3",
						Title:    "Концерт для фортепиано",
						Composer: "М. Б. Тертерян",
						Duration: "8:45",
						Src:      "/audio/piano-concerto.mp3",
					},
				},
			},
			Video: VideoCollection{
				WatchVideo: "Смотреть видео",
				SourceNote: "Видеоматериалы предоставлены из архивов Московского музыкального колледжа и частных коллекций.",
				Items: []*VideoItem{
					{
						ID:          "1",
						Title:       "Концерт в Московской консерватории",
						Description: "Выступление с произведениями Скрябина и Рахманинова",
						Duration:    "45:32",
						Thumbnail:   "/placeholder.jpg",
						VideoURL:    "https://example.com/video1",
						Year:        NewYear("1985"),
					},
					{
						ID:          "2",
						Title:       "Интервью о творческом пути",
						Description: "Беседа с композитором о его музыкальной философии",
						Duration:    "18:45",
						Thumbnail:   "/placeholder.jpg",
						VideoURL:    "https://example.com/video2",
						Year:        NewYear("1992"),
					},
				},
			},
			Photos: PhotoCollection{
				SourceNote: "Фотографии из семейного архива и коллекции Московского музыкального колледжа.",
				Items: []*PhotoItem{
					{
						ID:          "1",
						Src:         "/photos/1.jpg",
						Title:       "В музыкальном колледже",
						Description: "Михаил Бабкенович за роялем в аудитории колледжа",
						Year:        NewYear("1985"),
					},
					{
						ID:          "2",
						Src:         "/placeholder.jpg",
						Title:       "Семейный портрет",
						Description: "С супругой Татьяной Борисовной",
						Year:        NewYear("1972"),
					},
				},
			},
			Publications: PublicationCollection{
				DownloadPdf: "Скачать PDF",
				PagesLabel:  "стр.",
				SourceNote:  "Все материалы предоставлены с разрешения правообладателей. Для использования в научных целях обращайтесь к администрации сайта.",
				Items: []*PublicationItem{
					{
						ID:          "1",
						Title:       "Интервью с композитором М. Б. Тертеряном",
						Description: "Подробная беседа о творческом пути и музыкальной философии композитора",
						Type:        "Интервью",
						Author:      "Музыкальная жизнь",
						Year:        NewYear("1985"),
						Pages:       8,
						Size:        "2.3 MB",
						FileURL:     "/documents/interview-1985.pdf",
						Language:    "Русский",
					},
					{
						ID:          "2",
						Title:       "Педагогические принципы М. Б. Тертеряна",
						Description: "Статья о методике преподавания и воспитания музыкантов",
						Type:        "Статья",
						Author:      "Консерватория",
						Year:        NewYear("1992"),
						Pages:       12,
						Size:        "3.1 MB",
						FileURL:     "/documents/pedagogy-1992.pdf",
						Language:    "Русский",
					},
				},
			},
		},
		EN: &LocaleData{
			Music: MusicCollection{
				ListTitle: "List of Works",
				Tracks: []*AudioTrack{
					{
						ID:       "1",
						Title:    "Symphony No. 1",
						Composer: "M. B. Terteryan",
						Duration: "4:32",
						Src:      "/audio/symphony1.mp3",
					},
					{
						ID:       "2",
						Title:    "String Quartet No. 2",
						Composer: "M. B. Terteryan",
						Duration: "6:18",
						Src:      "/audio/quartet2.mp3",
					},
					{
						ID:       "3",
						Title:    "Piano Concerto",
						Composer: "M. B. Terteryan",
						Duration: "8:45",
						Src:      "/audio/piano-concerto.mp3",
					},
				},
			},
			Video: VideoCollection{
				WatchVideo: "Watch Video",
				SourceNote: "Video materials provided from the archives of Moscow Music College and private collections.",
				Items: []*VideoItem{
					{
						ID:          "1",
						Title:       "Concert at the Moscow Conservatory",
						Description: "Performance of works by Scriabin and Rachmaninoff",
						Duration:    "45:32",
						Thumbnail:   "/placeholder.jpg",
						VideoURL:    "https://example.com/video1",
						Year:        NewYear("1985"),
					},
					{
						ID:          "2",
						Title:       "Interview on the Creative Path",
						Description: "A conversation with the composer about his musical philosophy",
						Duration:    "18:45",
						Thumbnail:   "/placeholder.jpg",
						VideoURL:    "https://example.com/video2",
						Year:        NewYear("1992"),
					},
				},
			},
			Photos: PhotoCollection{
				SourceNote: "Photographs from family archives and the Moscow Music College collection.",
				Items: []*PhotoItem{
					{
						ID:          "1",
						Src:         "/photos/1.jpg",
						Title:       "At the Music College",
						Description: "Mikhail Babkenovich at the piano in a college auditorium",
						Year:        NewYear("1985"),
					},
					{
						ID:          "2",
						Src:         "/placeholder.jpg",
						Title:       "Family Portrait",
						Description: "With his wife Tatyana Borisovna",
						Year:        NewYear("1972"),
					},
				},
			},
			Publications: PublicationCollection{
				DownloadPdf: "Download PDF",
				PagesLabel:  "pp.",
				SourceNote:  "All materials are provided with permission from copyright holders. For academic use, please contact the site administration.",
				Items: []*PublicationItem{
					{
						ID:          "1",
						Title:       "Interview with Composer M. B. Terteryan",
						Description: "An in-depth conversation about the composer's creative path and musical philosophy",
						Type:        "Interview",
						Author:      "Muzykalnaya Zhizn",
						Year:        NewYear("1985"),
						Pages:       8,
						Size:        "2.3 MB",
						FileURL:     "/documents/interview-1985.pdf",
						Language:    "Russian",
					},
					{
						ID:          "2",
						Title:       "Pedagogical Principles of M. B. Terteryan",
						Description: "An article on the methods of teaching and educating musicians",
						Type:        "Article",
						Author:      "Conservatory",
						Year:        NewYear("1992"),
						Pages:       12,
						Size:        "3.1 MB",
						FileURL:     "/documents/pedagogy-1992.pdf",
						Language:    "Russian",
					},
				},
			},
		},
	}
}
