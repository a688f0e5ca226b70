package entity

// PathName is a symbolic location a front-end may ask the host to resolve.
// Values match the names front-ends send on the wire.
type PathName string

const (
	PathHome          PathName = "home"
	PathAppData       PathName = "appData"
	PathUserData      PathName = "userData"
	PathCache         PathName = "cache"
	PathTemp          PathName = "temp"
	PathExe           PathName = "exe"
	PathModule        PathName = "module"
	PathDesktop       PathName = "desktop"
	PathDocuments     PathName = "documents"
	PathDownloads     PathName = "downloads"
	PathMusic         PathName = "music"
	PathPictures      PathName = "pictures"
	PathVideos        PathName = "videos"
	PathLogs          PathName = "logs"
	PathPluginSupport PathName = "pepperFlashSystemPlugin"
)

// AllPathNames returns every known path name in a stable order.
func AllPathNames() []PathName {
	return []PathName{
		PathHome,
		PathAppData,
		PathUserData,
		PathCache,
		PathTemp,
		PathExe,
		PathModule,
		PathDesktop,
		PathDocuments,
		PathDownloads,
		PathMusic,
		PathPictures,
		PathVideos,
		PathLogs,
		PathPluginSupport,
	}
}

// Valid reports whether n is one of the known path names.
func (n PathName) Valid() bool {
	for _, known := range AllPathNames() {
		if n == known {
			return true
		}
	}
	return false
}

// String returns the wire name.
func (n PathName) String() string {
	return string(n)
}
