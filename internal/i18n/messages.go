package i18n

// arabic holds the Arabic copy. Arabic is the default locale of the studio.
var arabic = map[string]string{
	MsgImagePromptRequired: "الرجاء إدخال وصف للصورة.",
	MsgImageFailed:         "حدث خطأ أثناء إنشاء الصورة. الرجاء المحاولة مرة أخرى.",
	MsgEditInputRequired:   "الرجاء تحميل صورة وتقديم وصف للتعديل.",
	MsgEditFailed:          "حدث خطأ أثناء تعديل الصورة. الرجاء المحاولة مرة أخرى.",
	MsgVideoPromptRequired: "الرجاء إدخال وصف للفيديو.",
	MsgVideoFailed:         "حدث خطأ أثناء إنشاء الفيديو. الرجاء المحاولة مرة أخرى.",

	MsgNoImage:        "لم يتم إنشاء أي صورة.",
	MsgEditNoImage:    "فشل تعديل الصورة.",
	MsgVideoBlocked:   "فشل إنشاء الفيديو. قد يكون السبب هو أن طلبك يخالف سياسات السلامة. يرجى تجربة وصف مختلف.",
	MsgDownloadFailed: "فشل تحميل الفيديو النهائي. رمز الحالة: %s",
	MsgPollExhausted:  "استغرق إنشاء الفيديو وقتًا أطول من المسموح به. يرجى المحاولة مرة أخرى لاحقًا.",
	MsgNotImage:       "الملف المحدد ليس صورة.",
	MsgTooLarge:       "حجم الصورة أكبر من الحد المسموح به.",

	MsgInvalidKey: "مفتاح API الذي تم تحديده غير صالح. يرجى تحديد مفتاح آخر.",

	MsgEntityNotFound: `<strong>إجراء مطلوب في حساب Google Cloud الخاص بك</strong>
<br/><br/>
لم نتمكن من الوصول إلى نماذج الفيديو باستخدام مفتاح API الذي اخترته. عادةً ما يكون السبب هو أن مشروع Google Cloud المرتبط بالمفتاح يحتاج إلى بعض الإعدادات الإضافية.
<br/><br/>
<strong>يرجى اتباع قائمة التحقق التالية لحل المشكلة:</strong>
<ol class="checklist">
  <li>
    <strong>تفعيل واجهة برمجة تطبيقات Vertex AI:</strong>
    <br/>
    هذا هو السبب الأكثر شيوعًا. يرجى التأكد من تفعيلها عبر
    <a href="https://console.cloud.google.com/apis/library/vertexai.googleapis.com" target="_blank" rel="noopener noreferrer">هذا الرابط المباشر</a>.
  </li>
  <li>
    <strong>التحقق من الفوترة:</strong>
    <br/>
    تأكد من أن مشروعك على Google Cloud مرتبط بحساب فوترة نشط.
  </li>
  <li>
    <strong>التحقق من الصلاحيات (IAM):</strong>
    <br/>
    تأكد من أن حسابك يمتلك دورًا يمنحه صلاحية استخدام Vertex AI (مثل "Vertex AI User").
  </li>
</ol>
<br/>
بعد إكمال هذه الخطوات، عد إلى هنا واضغط على زر "تحديد مفتاح API" مرة أخرى للمتابعة.`,
	MsgRateLimited: "تم تجاوز حد الطلبات. يرجى الانتظار والمحاولة مرة أخرى لاحقًا.",
	MsgBilling:     "توجد مشكلة في الفوترة متعلقة بمشروعك. يرجى مراجعة إعدادات الفوترة في Google Cloud.",
	MsgUnexpected:  "حدث خطأ غير متوقع أثناء إنشاء الفيديو.",

	MsgKeyRequired:      "يتطلب إنشاء الفيديو تحديد مفتاح API.",
	MsgKeyBannerTitle:   "مطلوب تحديد مفتاح API",
	MsgKeyBannerBody:    `يتطلب إنشاء الفيديو استخدام نماذج Veo المتقدمة. يرجى تحديد مفتاح API الخاص بك للمتابعة.<br/>قد يتم تطبيق رسوم. لمزيد من المعلومات، يرجى مراجعة <a href="https://ai.google.dev/gemini-api/docs/billing" target="_blank" rel="noopener noreferrer">وثائق الفوترة</a>.`,
	MsgKeySelectButton:  "تحديد مفتاح API",
	MsgKeyInvalidSubmit: "الرجاء إدخال مفتاح API.",

	MsgAppTitle:         "استوديو الوسائط بالذكاء الاصطناعي",
	MsgAppSubtitle:      "أنشئ وعدّل الصور والفيديوهات بقوة Gemini",
	MsgFooter:           "مدعوم بواسطة Google Gemini API",
	MsgTabImage:         "إنشاء صورة",
	MsgTabEdit:          "تعديل صورة",
	MsgTabVideo:         "إنشاء فيديو",
	MsgImageHeading:     "إنشاء صورة من نص",
	MsgImagePlaceholder: "مثال: روبوت يحمل لوح تزلج أحمر في مدينة مستقبلية",
	MsgImageButton:      "إنشاء الصورة",
	MsgImageEmpty:       "ستظهر الصورة التي تم إنشاؤها هنا",
	MsgEditHeading:      "تعديل صورة بالنص",
	MsgEditUpload:       "انقر لتحميل صورة",
	MsgEditPlaceholder:  "مثال: أضف لاما بجانب الشخص",
	MsgEditButton:       "تعديل الصورة",
	MsgEditEmpty:        "ستظهر الصورة المعدلة هنا",
	MsgVideoHeading:     "إنشاء فيديو من نص",
	MsgVideoIntro:       "صف الفيديو الذي تريد إنشاؤه. يمكن أن تستغرق هذه العملية عدة دقائق.",
	MsgVideoPlaceholder: "مثال: مجسم ثلاثي الأبعاد لقط يقود سيارة بأقصى سرعة",
	MsgVideoButton:      "إنشاء الفيديو",
	MsgVideoEmpty:       "سيظهر الفيديو الذي تم إنشاؤه هنا",
	MsgDownload:         "تنزيل",

	"ui.video_loading_1": "جاري تهيئة المولدات...",
	"ui.video_loading_2": "يتم الآن تجميع المشاهد...",
	"ui.video_loading_3": "الذكاء الاصطناعي يفكر بإبداع...",
	"ui.video_loading_4": "يتم تصيير الإطارات الأولى...",
	"ui.video_loading_5": "هذه العملية قد تستغرق بضع دقائق...",
	"ui.video_loading_6": "شكرًا لصبرك، النتيجة تستحق الانتظار!",
	"ui.video_loading_7": "اللمسات الأخيرة على الفيديو...",
}

var english = map[string]string{
	MsgImagePromptRequired: "Please enter a description for the image.",
	MsgImageFailed:         "Something went wrong while generating the image. Please try again.",
	MsgEditInputRequired:   "Please upload an image and describe the edit.",
	MsgEditFailed:          "Something went wrong while editing the image. Please try again.",
	MsgVideoPromptRequired: "Please enter a description for the video.",
	MsgVideoFailed:         "Something went wrong while generating the video. Please try again.",

	MsgNoImage:        "No image was generated.",
	MsgEditNoImage:    "Image editing failed.",
	MsgVideoBlocked:   "Video generation failed. Your request may violate the safety policies. Please try a different description.",
	MsgDownloadFailed: "Downloading the final video failed. Status code: %s",
	MsgPollExhausted:  "Video generation took longer than allowed. Please try again later.",
	MsgNotImage:       "The selected file is not an image.",
	MsgTooLarge:       "The image is larger than the allowed size.",

	MsgInvalidKey: "The selected API key is not valid. Please select a different key.",

	MsgEntityNotFound: `<strong>Action required in your Google Cloud account</strong>
<br/><br/>
We could not reach the video models with the API key you selected. This usually means the Google Cloud project behind the key needs some extra setup.
<br/><br/>
<strong>Please work through this checklist:</strong>
<ol class="checklist">
  <li>
    <strong>Enable the Vertex AI API:</strong>
    <br/>
    This is the most common cause. Make sure it is enabled through
    <a href="https://console.cloud.google.com/apis/library/vertexai.googleapis.com" target="_blank" rel="noopener noreferrer">this direct link</a>.
  </li>
  <li>
    <strong>Check billing:</strong>
    <br/>
    Make sure your Google Cloud project is linked to an active billing account.
  </li>
  <li>
    <strong>Check permissions (IAM):</strong>
    <br/>
    Make sure your account has a role that allows using Vertex AI (such as "Vertex AI User").
  </li>
</ol>
<br/>
Once these steps are done, come back and press "Select API key" again to continue.`,
	MsgRateLimited: "The request limit was exceeded. Please wait and try again later.",
	MsgBilling:     "There is a billing problem with your project. Please review the billing settings in Google Cloud.",
	MsgUnexpected:  "An unexpected error occurred while generating the video.",

	MsgKeyRequired:      "Video generation requires a selected API key.",
	MsgKeyBannerTitle:   "API key selection required",
	MsgKeyBannerBody:    `Video generation uses the advanced Veo models. Please select your API key to continue.<br/>Charges may apply. See the <a href="https://ai.google.dev/gemini-api/docs/billing" target="_blank" rel="noopener noreferrer">billing documentation</a> for details.`,
	MsgKeySelectButton:  "Select API key",
	MsgKeyInvalidSubmit: "Please enter an API key.",

	MsgAppTitle:         "AI Media Studio",
	MsgAppSubtitle:      "Create and edit images and videos with Gemini",
	MsgFooter:           "Powered by the Google Gemini API",
	MsgTabImage:         "Generate image",
	MsgTabEdit:          "Edit image",
	MsgTabVideo:         "Generate video",
	MsgImageHeading:     "Generate an image from text",
	MsgImagePlaceholder: "Example: a robot holding a red skateboard in a futuristic city",
	MsgImageButton:      "Generate image",
	MsgImageEmpty:       "The generated image will appear here",
	MsgEditHeading:      "Edit an image with text",
	MsgEditUpload:       "Click to upload an image",
	MsgEditPlaceholder:  "Example: add a llama next to the person",
	MsgEditButton:       "Edit image",
	MsgEditEmpty:        "The edited image will appear here",
	MsgVideoHeading:     "Generate a video from text",
	MsgVideoIntro:       "Describe the video you want to create. This can take several minutes.",
	MsgVideoPlaceholder: "Example: a 3D model of a cat driving a car at full speed",
	MsgVideoButton:      "Generate video",
	MsgVideoEmpty:       "The generated video will appear here",
	MsgDownload:         "Download",

	"ui.video_loading_1": "Warming up the generators...",
	"ui.video_loading_2": "Assembling the scenes...",
	"ui.video_loading_3": "The AI is getting creative...",
	"ui.video_loading_4": "Rendering the first frames...",
	"ui.video_loading_5": "This can take a few minutes...",
	"ui.video_loading_6": "Thanks for your patience, it will be worth it!",
	"ui.video_loading_7": "Putting the finishing touches on the video...",
}
