/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package osstr

// PathToText converts a native path into Text.
//
// Every run of bytes that is not valid UTF-8 is replaced with a single
// Replacement sentinel (see ReplaceRuns). Valid UTF-8 input is returned
// unchanged, so PathToText(TextToPath(s)) == Text(s) for every valid s.
// PathToText never fails and never panics.
func PathToText(p NativePath) Text {
	return ReplaceRuns.PathToText(p)
}

// TextToPath re-wraps s as a native path. The content is not inspected or
// modified.
func TextToPath(s string) NativePath {
	return NativePath(s)
}

// PathToEnvString reinterprets a path as a native environment string. The
// bytes are unchanged.
func PathToEnvString(p NativePath) EnvString {
	return EnvString(p)
}

// EnvStringToPath reinterprets a native environment string as a path. The
// bytes are unchanged.
func EnvStringToPath(e EnvString) NativePath {
	return NativePath(e)
}

// EnvStringToText converts a native environment string into Text, with the
// same substitution policy as PathToText. It never fails and never panics.
func EnvStringToText(e EnvString) Text {
	return ReplaceRuns.EnvStringToText(e)
}

// TextToEnvString re-wraps s as a native environment string. The content is
// not inspected or modified.
func TextToEnvString(s string) EnvString {
	return EnvString(s)
}
